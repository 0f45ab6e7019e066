package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	countries = []string{"USA", "Canada", "UK", "Australia", "Japan", "Germany", "France", "Brazil"}

	songTitles = []string{
		"Midnight Dreams", "Electric Nights", "Sunset Boulevard", "Ocean Waves",
		"City Lights", "Dancing Stars", "Broken Hearts", "Summer Vibes",
		"Neon Glow", "Silent Whispers", "Thunder Storm", "Golden Hour",
		"Velvet Sky", "Crystal Clear", "Fire and Ice", "Moonlight Serenade",
		"Starlight Express", "Cosmic Journey", "Digital Dreams", "Retro Wave",
	}

	playlistNames = []string{
		"Chill Vibes", "Workout Mix", "Road Trip", "Study Session",
		"Party Time", "Relaxing Evening", "Morning Energy", "Late Night",
		"Top Hits 2024", "Indie Favorites", "Electronic Beats", "Rock Classics",
		"Jazz Collection", "Pop Anthems", "Acoustic Sessions", "Hip Hop Essentials",
	}
)

// Song durations in seconds and the play history window in days.
const (
	minDuration = 120
	maxDuration = 300
	historyDays = 30
)

// UserRow is a generated users row.
type UserRow struct {
	Username     string
	Email        string
	ProfileImage string
}

func (r UserRow) values() []any { return []any{r.Username, r.Email, r.ProfileImage} }

// ArtistRow is a generated artists row.
type ArtistRow struct {
	Name         string
	Country      string
	ProfileImage string
}

func (r ArtistRow) values() []any { return []any{r.Name, r.Country, r.ProfileImage} }

// SongRow is a generated songs row.
type SongRow struct {
	Title      string
	ArtistID   int64
	Duration   int
	AlbumCover string
}

func (r SongRow) values() []any { return []any{r.Title, r.ArtistID, r.Duration, r.AlbumCover} }

// PlaylistRow is a generated playlists row.
type PlaylistRow struct {
	Name      string
	IsCurated bool
	CreatedBy int64
	Cover     string
}

func (r PlaylistRow) values() []any { return []any{r.Name, r.IsCurated, r.CreatedBy, r.Cover} }

// PlayRow is a generated plays row.
type PlayRow struct {
	UserID   int64
	SongID   int64
	PlayedAt time.Time
}

func (r PlayRow) values() []any { return []any{r.UserID, r.SongID, r.PlayedAt} }

// Pair is a generated many-to-many link.
type Pair struct {
	Left  int64
	Right int64
}

func (p Pair) values() []any { return []any{p.Left, p.Right} }

type valuer interface{ values() []any }

func toValues[T valuer](rows []T) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = row.values()
	}
	return out
}

// Generator produces realistic-looking catalog rows. Content is random but
// the shape of every row is fixed.
type Generator struct {
	fake *gofakeit.Faker
	now  func() time.Time
}

// NewGenerator returns a Generator; a zero seed picks a random one.
func NewGenerator(seed uint64) *Generator {
	return &Generator{fake: gofakeit.New(seed), now: time.Now}
}

// ImageURLs builds count placeholder image URLs of the given square size.
func ImageURLs(size, count, start int) []string {
	urls := make([]string, count)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://picsum.photos/%d/%d?random=%d", size, size, i+start)
	}
	return urls
}

// Users generates n users with usernames and emails unique within the batch.
func (g *Generator) Users(n int) []UserRow {
	images := ImageURLs(200, 20, 50)
	usedNames := make(map[string]struct{}, n)
	usedEmails := make(map[string]struct{}, n)

	users := make([]UserRow, 0, n)
	for i := 0; i < n; i++ {
		username := g.fake.Username()
		for taken(usedNames, username) {
			username = fmt.Sprintf("%s_%d", g.fake.Username(), g.fake.Number(1000, 9999))
		}
		usedNames[username] = struct{}{}

		email := g.fake.Email()
		for taken(usedEmails, email) {
			email = g.fake.Email()
		}
		usedEmails[email] = struct{}{}

		users = append(users, UserRow{
			Username:     username,
			Email:        email,
			ProfileImage: g.fake.RandomString(images),
		})
	}
	return users
}

// Artists generates n artists.
func (g *Generator) Artists(n int) []ArtistRow {
	images := ImageURLs(400, 8, 1)

	artists := make([]ArtistRow, 0, n)
	for i := 0; i < n; i++ {
		artists = append(artists, ArtistRow{
			Name:         g.fake.Name(),
			Country:      g.fake.RandomString(countries),
			ProfileImage: g.fake.RandomString(images),
		})
	}
	return artists
}

// Songs generates n songs credited to the given artists. Without artists
// there is nothing to reference and no songs are produced.
func (g *Generator) Songs(n int, artistIDs []int64) []SongRow {
	if len(artistIDs) == 0 {
		return nil
	}
	covers := ImageURLs(300, 20, 10)

	songs := make([]SongRow, 0, n)
	for i := 0; i < n; i++ {
		songs = append(songs, SongRow{
			Title:      g.fake.RandomString(songTitles),
			ArtistID:   g.pick(artistIDs),
			Duration:   g.fake.Number(minDuration, maxDuration),
			AlbumCover: g.fake.RandomString(covers),
		})
	}
	return songs
}

// Playlists generates n non-curated playlists owned by the given users.
func (g *Generator) Playlists(n int, userIDs []int64) []PlaylistRow {
	if len(userIDs) == 0 {
		return nil
	}
	covers := ImageURLs(300, 20, 30)

	playlists := make([]PlaylistRow, 0, n)
	for i := 0; i < n; i++ {
		playlists = append(playlists, PlaylistRow{
			Name:      g.fake.RandomString(playlistNames),
			IsCurated: false,
			CreatedBy: g.pick(userIDs),
			Cover:     g.fake.RandomString(covers),
		})
	}
	return playlists
}

// Plays generates n play events dated within the trailing history window.
func (g *Generator) Plays(n int, userIDs, songIDs []int64) []PlayRow {
	if len(userIDs) == 0 || len(songIDs) == 0 {
		return nil
	}
	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	plays := make([]PlayRow, 0, n)
	for i := 0; i < n; i++ {
		plays = append(plays, PlayRow{
			UserID:   g.pick(userIDs),
			SongID:   g.pick(songIDs),
			PlayedAt: today.AddDate(0, 0, -g.fake.Number(0, historyDays)),
		})
	}
	return plays
}

// UniquePairs draws random (left, right) pairs until target distinct pairs
// exist or 3*target draws have been spent. The result is therefore at most
// target long and may be shorter when the pair space is small; it never
// contains duplicates. Pairs keep the order in which they were first drawn.
func (g *Generator) UniquePairs(left, right []int64, target int) []Pair {
	if len(left) == 0 || len(right) == 0 || target <= 0 {
		return nil
	}

	seen := make(map[Pair]struct{}, target)
	pairs := make([]Pair, 0, target)
	for attempts := 0; len(pairs) < target && attempts < target*3; attempts++ {
		p := Pair{Left: g.pick(left), Right: g.pick(right)}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

func (g *Generator) pick(ids []int64) int64 {
	return ids[g.fake.Number(0, len(ids)-1)]
}

func taken(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
