package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"musiccatalog/internal/models"
)

// ListUsers returns every user.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, username, email, profile_image, created_at
			FROM users
			ORDER BY id
		`)
		if err != nil {
			return fmt.Errorf("query users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.ProfileImage, &user.CreatedAt); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			users = append(users, user)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate users: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// RankUsers orders users by the summed duration of the songs they played.
// Users without plays rank with a total of zero. A limit of zero or less
// returns every user.
func (s *Store) RankUsers(ctx context.Context, limit int) ([]models.TopUser, error) {
	query := `
		SELECT u.id, u.username, u.email, u.profile_image, u.created_at,
		       COALESCE(SUM(s.duration), 0) AS total_playtime
		FROM users u
		LEFT JOIN plays p ON u.id = p.user_id
		LEFT JOIN songs s ON p.song_id = s.id
		GROUP BY u.id, u.username, u.email, u.profile_image, u.created_at
		ORDER BY total_playtime DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	users := []models.TopUser{}
	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query user playtime: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var user models.TopUser
			if err := rows.Scan(
				&user.ID, &user.Username, &user.Email, &user.ProfileImage, &user.CreatedAt,
				&user.TotalPlaytime,
			); err != nil {
				return fmt.Errorf("scan user playtime: %w", err)
			}
			users = append(users, user)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate user playtime: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser returns a user profile with owned playlists, total listening time
// and the five songs the user played most.
func (s *Store) GetUser(ctx context.Context, id int64) (models.UserDetail, error) {
	detail := models.UserDetail{
		Playlists: []models.OwnedPlaylist{},
		TopSongs:  []models.UserSongPlays{},
	}

	err := s.db.WithConn(ctx, func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, `
			SELECT id, username, email, profile_image, created_at
			FROM users
			WHERE id = $1
		`, id).Scan(&detail.ID, &detail.Username, &detail.Email, &detail.ProfileImage, &detail.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if err := ownedPlaylists(ctx, conn, id, &detail); err != nil {
			return err
		}

		if err := conn.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(s.duration), 0) AS total_playtime
			FROM plays p
			JOIN songs s ON p.song_id = s.id
			WHERE p.user_id = $1
		`, id).Scan(&detail.TotalPlaytime); err != nil {
			return fmt.Errorf("sum user playtime: %w", err)
		}

		return userTopSongs(ctx, conn, id, &detail)
	})
	if err != nil {
		return models.UserDetail{}, err
	}

	return detail, nil
}

func ownedPlaylists(ctx context.Context, conn *sql.Conn, userID int64, detail *models.UserDetail) error {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, cover, created_at
		FROM playlists
		WHERE created_by = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return fmt.Errorf("query user playlists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var playlist models.OwnedPlaylist
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Cover, &playlist.CreatedAt); err != nil {
			return fmt.Errorf("scan user playlist: %w", err)
		}
		detail.Playlists = append(detail.Playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate user playlists: %w", err)
	}

	detail.PlaylistCount = len(detail.Playlists)
	return nil
}

func userTopSongs(ctx context.Context, conn *sql.Conn, userID int64, detail *models.UserDetail) error {
	rows, err := conn.QueryContext(ctx, `
		SELECT s.id, s.title, a.name AS artist_name, COUNT(*) AS play_count
		FROM plays p
		JOIN songs s ON p.song_id = s.id
		JOIN artists a ON s.artist_id = a.id
		WHERE p.user_id = $1
		GROUP BY s.id, s.title, a.name
		ORDER BY play_count DESC
		LIMIT 5
	`, userID)
	if err != nil {
		return fmt.Errorf("query user top songs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var song models.UserSongPlays
		if err := rows.Scan(&song.ID, &song.Title, &song.ArtistName, &song.PlayCount); err != nil {
			return fmt.Errorf("scan user top song: %w", err)
		}
		detail.TopSongs = append(detail.TopSongs, song)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate user top songs: %w", err)
	}
	return nil
}
