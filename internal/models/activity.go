package models

// PlayEvent records a user listening to a song.
type PlayEvent struct {
	UserID *int64 `json:"user_id"`
	SongID *int64 `json:"song_id"`
}

// FollowEvent records a user following a playlist.
type FollowEvent struct {
	UserID     *int64 `json:"user_id"`
	PlaylistID *int64 `json:"playlist_id"`
}
