package main

import (
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the configured database is reachable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, logger, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Ping(cmd.Context()); err != nil {
			return err
		}
		logger.Info().Msg("database connection ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
