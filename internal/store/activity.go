package store

import (
	"context"
	"database/sql"
	"fmt"
)

// RecordPlay stores a play event stamped with the current time.
func (s *Store) RecordPlay(ctx context.Context, userID, songID int64) (int64, error) {
	var id int64

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO plays (user_id, song_id)
			VALUES ($1, $2)
			RETURNING id
		`, userID, songID).Scan(&id); err != nil {
			return fmt.Errorf("insert play: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// FollowPlaylist subscribes a user to a playlist.
func (s *Store) FollowPlaylist(ctx context.Context, userID, playlistID int64) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO follows (user_id, playlist_id)
			VALUES ($1, $2)
		`, userID, playlistID); err != nil {
			return fmt.Errorf("insert follow: %w", err)
		}
		return nil
	})
}
