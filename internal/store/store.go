package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"musiccatalog/internal/database"
)

var (
	// ErrNotFound signals that the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoUsers is returned when a playlist needs a creator but no users exist.
	ErrNoUsers = errors.New("no users found in database")
)

// Postgres error classes surfaced by write endpoints.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
)

// playlistPlayCounts aggregates plays of every song in each playlist.
const playlistPlayCounts = `
			SELECT ps.playlist_id, COUNT(pl.id) AS total_plays
			FROM playlist_songs ps
			LEFT JOIN plays pl ON ps.song_id = pl.song_id
			GROUP BY ps.playlist_id`

// Store runs catalog queries, each on its own connection.
type Store struct {
	db *database.Provider
}

// New sets up a Store using the provided connection provider.
func New(db *database.Provider) *Store {
	return &Store{db: db}
}

// IsConstraintViolation reports whether err was raised by a unique, foreign
// key or not-null constraint.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation, notNullViolation:
			return true
		}
	}
	return false
}
