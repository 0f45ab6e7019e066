package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"musiccatalog/internal/models"
)

// ListSongs returns one page of songs ordered by title, optionally filtered
// by a case-insensitive substring of the title or artist name.
func (s *Store) ListSongs(ctx context.Context, q models.SongQuery) ([]models.Song, error) {
	query := `
		SELECT s.id, s.title, s.artist_id, s.duration, s.album_cover, a.name AS artist_name
		FROM songs s
		JOIN artists a ON s.artist_id = a.id`
	args := []any{}
	argIdx := 1

	if q.Search != "" {
		query += fmt.Sprintf(" WHERE LOWER(s.title) LIKE LOWER($%d) OR LOWER(a.name) LIKE LOWER($%d)", argIdx, argIdx)
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY s.title LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, q.PerPage, q.Offset())

	songs := []models.Song{}
	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query songs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var song models.Song
			if err := rows.Scan(&song.ID, &song.Title, &song.ArtistID, &song.Duration, &song.AlbumCover, &song.ArtistName); err != nil {
				return fmt.Errorf("scan song: %w", err)
			}
			songs = append(songs, song)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate songs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return songs, nil
}

// GetSong returns a song with artist details and its all-time play count.
func (s *Store) GetSong(ctx context.Context, id int64) (models.SongDetail, error) {
	var song models.SongDetail

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, `
			SELECT s.id, s.title, s.artist_id, s.duration, s.album_cover,
			       a.name AS artist_name, a.country, a.profile_image AS artist_image
			FROM songs s
			JOIN artists a ON s.artist_id = a.id
			WHERE s.id = $1
		`, id).Scan(
			&song.ID, &song.Title, &song.ArtistID, &song.Duration, &song.AlbumCover,
			&song.ArtistName, &song.ArtistCountry, &song.ArtistImage,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get song: %w", err)
		}

		if err := conn.QueryRowContext(ctx, `
			SELECT COUNT(*) AS play_count
			FROM plays p
			WHERE p.song_id = $1
		`, id).Scan(&song.PlayCount); err != nil {
			return fmt.Errorf("count song plays: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.SongDetail{}, err
	}

	return song, nil
}

// TopSongs returns the ten most played songs of the trailing seven days.
func (s *Store) TopSongs(ctx context.Context) ([]models.TopSong, error) {
	songs := []models.TopSong{}

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT s.id, s.title, a.name AS artist, COUNT(*) AS play_count, s.album_cover
			FROM plays p
			JOIN songs s ON p.song_id = s.id
			LEFT JOIN artists a ON s.artist_id = a.id
			WHERE p.played_at >= CURRENT_DATE - INTERVAL '7 days'
			GROUP BY s.id, s.title, a.name, s.album_cover
			ORDER BY play_count DESC
			LIMIT 10
		`)
		if err != nil {
			return fmt.Errorf("query top songs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var song models.TopSong
			if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.PlayCount, &song.AlbumCover); err != nil {
				return fmt.Errorf("scan top song: %w", err)
			}
			songs = append(songs, song)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate top songs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return songs, nil
}
