package models

import "time"

// Playlist is the listing view of a playlist.
type Playlist struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	IsCurated       bool       `json:"is_curated" db:"is_curated"`
	CreatedBy       *int64     `json:"created_by" db:"created_by"`
	CreatedAt       *time.Time `json:"created_at" db:"created_at"`
	Cover           *string    `json:"cover" db:"cover"`
	CreatorUsername *string    `json:"creator_username" db:"creator_username"`
	PlayCount       int64      `json:"play_count" db:"play_count"`
}

// CreatedPlaylist is returned after a successful create.
type CreatedPlaylist struct {
	Playlist
	Description *string `json:"description" db:"description"`
}

// NewPlaylist carries the client-provided fields of a playlist create.
type NewPlaylist struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cover       *string `json:"cover"`
}

// RankedPlaylist is a chart entry for the most played playlists.
type RankedPlaylist struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Cover     *string `json:"cover" db:"cover"`
	PlayCount int64   `json:"play_count" db:"play_count"`
}

// PlaylistTrack is a song listed inside a playlist.
type PlaylistTrack struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	Duration   *int    `json:"duration" db:"duration"`
	AlbumCover *string `json:"album_cover" db:"album_cover"`
	ArtistName string  `json:"artist_name" db:"artist_name"`
}

// PlaylistDetail is the full view of a single playlist.
type PlaylistDetail struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	IsCurated       bool            `json:"is_curated"`
	CreatedBy       *int64          `json:"created_by"`
	CreatedAt       *time.Time      `json:"created_at"`
	Cover           *string         `json:"cover"`
	CreatorUsername *string         `json:"creator_username"`
	CreatorImage    *string         `json:"creator_image"`
	Songs           []PlaylistTrack `json:"songs"`
	SongCount       int             `json:"song_count"`
	TotalPlays      int64           `json:"total_plays"`
}
