package models

import "time"

// User is a listener account.
type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	ProfileImage *string    `json:"profile_image" db:"profile_image"`
	CreatedAt    *time.Time `json:"created_at" db:"created_at"`
}

// TopUser is a user flattened together with their cumulative listening time.
type TopUser struct {
	User
	TotalPlaytime int64 `json:"total_playtime" db:"total_playtime"`
}

// UserPlaytime nests the user record beside the listening total.
type UserPlaytime struct {
	User          User  `json:"user"`
	TotalPlaytime int64 `json:"total_playtime"`
}

// OwnedPlaylist is a playlist entry on a user profile.
type OwnedPlaylist struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Cover     *string    `json:"cover" db:"cover"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// UserSongPlays counts how often a user played one song.
type UserSongPlays struct {
	ID         int64  `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	ArtistName string `json:"artist_name" db:"artist_name"`
	PlayCount  int64  `json:"play_count" db:"play_count"`
}

// UserDetail is the profile view of a single user.
type UserDetail struct {
	User
	Playlists     []OwnedPlaylist `json:"playlists"`
	PlaylistCount int             `json:"playlist_count"`
	TotalPlaytime int64           `json:"total_playtime"`
	TopSongs      []UserSongPlays `json:"top_songs"`
}
