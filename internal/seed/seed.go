// Package seed fills the catalog with randomized sample data.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"musiccatalog/internal/database"
)

const (
	insertUsers         = "INSERT INTO users (username, email, profile_image) VALUES {} RETURNING id"
	insertArtists       = "INSERT INTO artists (name, country, profile_image) VALUES {} RETURNING id"
	insertSongs         = "INSERT INTO songs (title, artist_id, duration, album_cover) VALUES {} RETURNING id"
	insertPlaylists     = "INSERT INTO playlists (name, is_curated, created_by, cover) VALUES {} RETURNING id"
	insertPlaylistSongs = "INSERT INTO playlist_songs (playlist_id, song_id) VALUES {}"
	insertPlays         = "INSERT INTO plays (user_id, song_id, played_at) VALUES {}"
	insertFollows       = "INSERT INTO follows (user_id, playlist_id) VALUES {}"
)

// Counts sets how many rows to generate per table. PlaylistSongs and Follows
// are upper bounds, see Generator.UniquePairs.
type Counts struct {
	Users         int
	Artists       int
	Songs         int
	Plays         int
	Playlists     int
	Follows       int
	PlaylistSongs int
}

// DefaultCounts is a small development dataset.
var DefaultCounts = Counts{
	Users:         15,
	Artists:       13,
	Songs:         50,
	Plays:         50,
	Playlists:     16,
	Follows:       13,
	PlaylistSongs: 10,
}

// Summary reports the rows generated per table.
type Summary struct {
	Users         int
	Artists       int
	Songs         int
	Playlists     int
	PlaylistSongs int
	Plays         int
	Follows       int
}

// Database is what the seeder needs from the connection provider.
type Database interface {
	ClearTables(ctx context.Context) error
	BatchInsert(ctx context.Context, prefix string, rows [][]any) ([]database.Row, error)
}

// Seeder wipes the catalog and refills it in foreign key order.
type Seeder struct {
	db     Database
	gen    *Generator
	counts Counts
	log    zerolog.Logger
}

// New constructs a Seeder.
func New(db Database, gen *Generator, counts Counts, logger zerolog.Logger) *Seeder {
	return &Seeder{db: db, gen: gen, counts: counts, log: logger}
}

// Run clears every table and inserts fresh data. Dependent rows are only
// generated once the ids they reference have been returned by the database.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	s.log.Info().Msg("clearing existing data")
	if err := s.db.ClearTables(ctx); err != nil {
		return sum, fmt.Errorf("clear tables: %w", err)
	}

	s.log.Info().Msg("inserting users and artists")
	userIDs, err := s.insert(ctx, insertUsers, toValues(s.gen.Users(s.counts.Users)))
	if err != nil {
		return sum, fmt.Errorf("seed users: %w", err)
	}
	artistIDs, err := s.insert(ctx, insertArtists, toValues(s.gen.Artists(s.counts.Artists)))
	if err != nil {
		return sum, fmt.Errorf("seed artists: %w", err)
	}
	sum.Users, sum.Artists = len(userIDs), len(artistIDs)

	s.log.Info().Msg("inserting songs and playlists")
	songIDs, err := s.insert(ctx, insertSongs, toValues(s.gen.Songs(s.counts.Songs, artistIDs)))
	if err != nil {
		return sum, fmt.Errorf("seed songs: %w", err)
	}
	playlistIDs, err := s.insert(ctx, insertPlaylists, toValues(s.gen.Playlists(s.counts.Playlists, userIDs)))
	if err != nil {
		return sum, fmt.Errorf("seed playlists: %w", err)
	}
	sum.Songs, sum.Playlists = len(songIDs), len(playlistIDs)

	s.log.Info().Msg("inserting playlist songs")
	playlistSongs := s.gen.UniquePairs(playlistIDs, songIDs, s.counts.PlaylistSongs)
	if _, err := s.db.BatchInsert(ctx, insertPlaylistSongs, toValues(playlistSongs)); err != nil {
		return sum, fmt.Errorf("seed playlist songs: %w", err)
	}
	sum.PlaylistSongs = len(playlistSongs)

	s.log.Info().Msg("inserting plays")
	plays := s.gen.Plays(s.counts.Plays, userIDs, songIDs)
	if _, err := s.db.BatchInsert(ctx, insertPlays, toValues(plays)); err != nil {
		return sum, fmt.Errorf("seed plays: %w", err)
	}
	sum.Plays = len(plays)

	s.log.Info().Msg("inserting follows")
	follows := s.gen.UniquePairs(userIDs, playlistIDs, s.counts.Follows)
	if _, err := s.db.BatchInsert(ctx, insertFollows, toValues(follows)); err != nil {
		return sum, fmt.Errorf("seed follows: %w", err)
	}
	sum.Follows = len(follows)

	s.log.Info().
		Int("users", sum.Users).
		Int("artists", sum.Artists).
		Int("songs", sum.Songs).
		Int("playlists", sum.Playlists).
		Int("playlist_songs", sum.PlaylistSongs).
		Int("plays", sum.Plays).
		Int("follows", sum.Follows).
		Msg("database populated")

	return sum, nil
}

func (s *Seeder) insert(ctx context.Context, prefix string, rows [][]any) ([]int64, error) {
	returned, err := s.db.BatchInsert(ctx, prefix, rows)
	if err != nil {
		return nil, err
	}
	return database.IDs(returned, "id")
}
