package models

// Song is a catalog track joined with its artist name.
type Song struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	ArtistID   int64   `json:"artist_id" db:"artist_id"`
	Duration   *int    `json:"duration" db:"duration"`
	AlbumCover *string `json:"album_cover" db:"album_cover"`
	ArtistName string  `json:"artist_name" db:"artist_name"`
}

// SongDetail adds artist metadata and the all-time play count.
type SongDetail struct {
	Song
	ArtistCountry *string `json:"artist_country" db:"country"`
	ArtistImage   *string `json:"artist_image" db:"artist_image"`
	PlayCount     int64   `json:"play_count"`
}

// TopSong is a chart entry for recently played songs.
type TopSong struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	Artist     *string `json:"artist" db:"artist"`
	PlayCount  int64   `json:"play_count" db:"play_count"`
	AlbumCover *string `json:"album_cover" db:"album_cover"`
}

// SongQuery selects a page of the song listing.
type SongQuery struct {
	Page    int
	PerPage int
	Search  string
}

// Offset returns the number of rows skipped before the page.
func (q SongQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}
