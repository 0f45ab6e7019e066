package main

import (
	"testing"

	"musiccatalog/internal/seed"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"seed", "reset", "ping"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if cmd.Name() != name {
			t.Fatalf("expected %s command, got %s", name, cmd.Name())
		}
	}
}

func TestSeedFlagsDefaultToDevelopmentCounts(t *testing.T) {
	flags := seedCmd.Flags()

	cases := map[string]int{
		"users":          seed.DefaultCounts.Users,
		"artists":        seed.DefaultCounts.Artists,
		"songs":          seed.DefaultCounts.Songs,
		"plays":          seed.DefaultCounts.Plays,
		"playlists":      seed.DefaultCounts.Playlists,
		"follows":        seed.DefaultCounts.Follows,
		"playlist-songs": seed.DefaultCounts.PlaylistSongs,
	}

	for name, want := range cases {
		got, err := flags.GetInt(name)
		if err != nil {
			t.Fatalf("flag %s: %v", name, err)
		}
		if got != want {
			t.Fatalf("flag %s defaults to %d, want %d", name, got, want)
		}
	}
}

func TestResetSchemaFlag(t *testing.T) {
	if resetCmd.Flags().Lookup("schema") == nil {
		t.Fatal("reset should accept --schema")
	}
}
