package seed

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"musiccatalog/internal/database"
)

type batchCall struct {
	prefix string
	rows   [][]any
}

// fakeDB hands out sequential ids for RETURNING statements and records every call.
type fakeDB struct {
	cleared bool
	calls   []batchCall
	nextID  int64
	failOn  string
}

func (f *fakeDB) ClearTables(context.Context) error {
	f.cleared = true
	return nil
}

func (f *fakeDB) BatchInsert(_ context.Context, prefix string, rows [][]any) ([]database.Row, error) {
	if !f.cleared {
		return nil, errors.New("insert before clear")
	}
	if f.failOn != "" && strings.Contains(prefix, f.failOn) {
		return nil, errors.New("boom")
	}
	f.calls = append(f.calls, batchCall{prefix: prefix, rows: rows})

	out := []database.Row{}
	if !strings.Contains(prefix, "RETURNING id") {
		return out, nil
	}
	for range rows {
		f.nextID++
		out = append(out, database.Row{"id": f.nextID})
	}
	return out, nil
}

func (f *fakeDB) idsFor(table string) map[int64]bool {
	ids := map[int64]bool{}
	var first int64 = 1
	for _, c := range f.calls {
		n := int64(len(c.rows))
		if strings.HasPrefix(c.prefix, "INSERT INTO "+table+" ") && strings.Contains(c.prefix, "RETURNING") {
			for id := first; id < first+n; id++ {
				ids[id] = true
			}
		}
		if strings.Contains(c.prefix, "RETURNING") {
			first += n
		}
	}
	return ids
}

func (f *fakeDB) rowsFor(table string) [][]any {
	for _, c := range f.calls {
		if strings.HasPrefix(c.prefix, "INSERT INTO "+table+" ") {
			return c.rows
		}
	}
	return nil
}

func TestRunInsertsInForeignKeyOrder(t *testing.T) {
	db := &fakeDB{}
	s := New(db, NewGenerator(21), DefaultCounts, zerolog.New(io.Discard))

	sum, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	wantOrder := []string{"users", "artists", "songs", "playlists", "playlist_songs", "plays", "follows"}
	if len(db.calls) != len(wantOrder) {
		t.Fatalf("expected %d batch inserts, got %d", len(wantOrder), len(db.calls))
	}
	for i, table := range wantOrder {
		if !strings.HasPrefix(db.calls[i].prefix, "INSERT INTO "+table+" ") {
			t.Fatalf("call %d: expected %s insert, got %q", i, table, db.calls[i].prefix)
		}
	}

	if sum.Users != 15 || sum.Artists != 13 || sum.Songs != 50 || sum.Playlists != 16 || sum.Plays != 50 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.PlaylistSongs > 10 || sum.Follows > 13 {
		t.Fatalf("pair counts exceed targets: %+v", sum)
	}
}

func TestRunReferencesOnlyInsertedIDs(t *testing.T) {
	db := &fakeDB{}
	s := New(db, NewGenerator(8), DefaultCounts, zerolog.New(io.Discard))

	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	users := db.idsFor("users")
	artists := db.idsFor("artists")
	songs := db.idsFor("songs")
	playlists := db.idsFor("playlists")

	check := func(table string, col int, valid map[int64]bool) {
		t.Helper()
		for _, row := range db.rowsFor(table) {
			id := row[col].(int64)
			if !valid[id] {
				t.Fatalf("%s row references unknown id %d", table, id)
			}
		}
	}

	check("songs", 1, artists)
	check("playlists", 2, users)
	check("playlist_songs", 0, playlists)
	check("playlist_songs", 1, songs)
	check("plays", 0, users)
	check("plays", 1, songs)
	check("follows", 0, users)
	check("follows", 1, playlists)
}

func TestRunStopsOnInsertError(t *testing.T) {
	db := &fakeDB{failOn: "INSERT INTO songs"}
	s := New(db, NewGenerator(1), DefaultCounts, zerolog.New(io.Discard))

	_, err := s.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "seed songs") {
		t.Fatalf("expected seed songs error, got %v", err)
	}
	if db.rowsFor("plays") != nil {
		t.Fatal("dependent tables must not be inserted after a failure")
	}
}
