package main

import (
	"github.com/spf13/cobra"

	"musiccatalog/internal/seed"
)

var (
	seedCounts = seed.DefaultCounts
	seedValue  uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipe all tables and fill them with generated data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, logger, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		seeder := seed.New(db, seed.NewGenerator(seedValue), seedCounts, logger)
		_, err = seeder.Run(cmd.Context())
		return err
	},
}

func init() {
	flags := seedCmd.Flags()
	flags.IntVar(&seedCounts.Users, "users", seedCounts.Users, "number of users")
	flags.IntVar(&seedCounts.Artists, "artists", seedCounts.Artists, "number of artists")
	flags.IntVar(&seedCounts.Songs, "songs", seedCounts.Songs, "number of songs")
	flags.IntVar(&seedCounts.Plays, "plays", seedCounts.Plays, "number of plays")
	flags.IntVar(&seedCounts.Playlists, "playlists", seedCounts.Playlists, "number of playlists")
	flags.IntVar(&seedCounts.Follows, "follows", seedCounts.Follows, "maximum number of follows")
	flags.IntVar(&seedCounts.PlaylistSongs, "playlist-songs", seedCounts.PlaylistSongs, "maximum number of playlist entries")
	flags.Uint64Var(&seedValue, "seed", 0, "random seed, 0 picks one")

	rootCmd.AddCommand(seedCmd)
}
