package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"musiccatalog/internal/models"
)

// ListPlaylists returns every playlist with its creator and play count,
// newest first.
func (s *Store) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	playlists := []models.Playlist{}

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT p.id, p.name, p.is_curated, p.created_by, p.created_at, p.cover,
			       u.username AS creator_username, COALESCE(play_counts.total_plays, 0) AS play_count
			FROM playlists p
			LEFT JOIN users u ON p.created_by = u.id
			LEFT JOIN (`+playlistPlayCounts+`
			) play_counts ON p.id = play_counts.playlist_id
			ORDER BY p.created_at DESC
		`)
		if err != nil {
			return fmt.Errorf("query playlists: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var playlist models.Playlist
			if err := rows.Scan(
				&playlist.ID, &playlist.Name, &playlist.IsCurated, &playlist.CreatedBy, &playlist.CreatedAt,
				&playlist.Cover, &playlist.CreatorUsername, &playlist.PlayCount,
			); err != nil {
				return fmt.Errorf("scan playlist: %w", err)
			}
			playlists = append(playlists, playlist)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate playlists: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return playlists, nil
}

// TopPlaylists returns the five playlists whose songs were played most,
// breaking ties with the most recently created playlist.
func (s *Store) TopPlaylists(ctx context.Context) ([]models.RankedPlaylist, error) {
	playlists := []models.RankedPlaylist{}

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT p.id, p.name, p.cover, COALESCE(play_counts.total_plays, 0) AS play_count
			FROM playlists p
			LEFT JOIN (`+playlistPlayCounts+`
			) play_counts ON p.id = play_counts.playlist_id
			ORDER BY play_count DESC, p.created_at DESC
			LIMIT 5
		`)
		if err != nil {
			return fmt.Errorf("query top playlists: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var playlist models.RankedPlaylist
			if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Cover, &playlist.PlayCount); err != nil {
				return fmt.Errorf("scan top playlist: %w", err)
			}
			playlists = append(playlists, playlist)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate top playlists: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return playlists, nil
}

// GetPlaylist returns a playlist with its creator, songs and total plays.
func (s *Store) GetPlaylist(ctx context.Context, id int64) (models.PlaylistDetail, error) {
	detail := models.PlaylistDetail{Songs: []models.PlaylistTrack{}}

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, `
			SELECT p.id, p.name, p.is_curated, p.created_by, p.created_at, p.cover,
			       u.username AS creator_username, u.profile_image AS creator_image
			FROM playlists p
			LEFT JOIN users u ON p.created_by = u.id
			WHERE p.id = $1
		`, id).Scan(
			&detail.ID, &detail.Name, &detail.IsCurated, &detail.CreatedBy, &detail.CreatedAt,
			&detail.Cover, &detail.CreatorUsername, &detail.CreatorImage,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get playlist: %w", err)
		}

		if err := playlistTracks(ctx, conn, id, &detail); err != nil {
			return err
		}

		if err := conn.QueryRowContext(ctx, `
			SELECT COUNT(pl.id) AS total_plays
			FROM playlist_songs ps
			LEFT JOIN plays pl ON ps.song_id = pl.song_id
			WHERE ps.playlist_id = $1
		`, id).Scan(&detail.TotalPlays); err != nil {
			return fmt.Errorf("count playlist plays: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.PlaylistDetail{}, err
	}

	return detail, nil
}

func playlistTracks(ctx context.Context, conn *sql.Conn, playlistID int64, detail *models.PlaylistDetail) error {
	rows, err := conn.QueryContext(ctx, `
		SELECT s.id, s.title, s.duration, s.album_cover, a.name AS artist_name
		FROM playlist_songs ps
		JOIN songs s ON ps.song_id = s.id
		JOIN artists a ON s.artist_id = a.id
		WHERE ps.playlist_id = $1
		ORDER BY s.title
	`, playlistID)
	if err != nil {
		return fmt.Errorf("query playlist songs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var track models.PlaylistTrack
		if err := rows.Scan(&track.ID, &track.Title, &track.Duration, &track.AlbumCover, &track.ArtistName); err != nil {
			return fmt.Errorf("scan playlist song: %w", err)
		}
		detail.Songs = append(detail.Songs, track)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate playlist songs: %w", err)
	}

	detail.SongCount = len(detail.Songs)
	return nil
}

// CreatePlaylist inserts a user playlist owned by a randomly chosen existing
// user. The caller's identity plays no part in the choice.
func (s *Store) CreatePlaylist(ctx context.Context, in models.NewPlaylist) (models.CreatedPlaylist, error) {
	var created models.CreatedPlaylist

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var (
			creatorID int64
			username  string
		)
		err := tx.QueryRowContext(ctx, `
			SELECT id, username
			FROM users
			ORDER BY RANDOM()
			LIMIT 1
		`).Scan(&creatorID, &username)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoUsers
		}
		if err != nil {
			return fmt.Errorf("pick playlist creator: %w", err)
		}

		if err := tx.QueryRowContext(ctx, `
			INSERT INTO playlists (name, created_by, is_curated, cover, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, name, is_curated, created_by, created_at, cover, description
		`, in.Name, creatorID, false, in.Cover, in.Description).Scan(
			&created.ID, &created.Name, &created.IsCurated, &created.CreatedBy, &created.CreatedAt,
			&created.Cover, &created.Description,
		); err != nil {
			return fmt.Errorf("insert playlist: %w", err)
		}

		created.CreatorUsername = &username
		return nil
	})
	if err != nil {
		return models.CreatedPlaylist{}, err
	}

	return created, nil
}
