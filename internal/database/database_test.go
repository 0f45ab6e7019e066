package database

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockProvider(t *testing.T) (*Provider, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestBuildBatch(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		rows      [][]any
		wantSQL   string
		wantArgs  int
		wantError error
	}{
		{
			name:     "marker replaced",
			prefix:   "INSERT INTO follows (user_id, playlist_id) VALUES {} ON CONFLICT DO NOTHING",
			rows:     [][]any{{1, 2}, {3, 4}},
			wantSQL:  "INSERT INTO follows (user_id, playlist_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING",
			wantArgs: 4,
		},
		{
			name:     "values appended without marker",
			prefix:   "INSERT INTO artists (name, country, profile_image) VALUES",
			rows:     [][]any{{"A", "UK", "x"}},
			wantSQL:  "INSERT INTO artists (name, country, profile_image) VALUES ($1, $2, $3)",
			wantArgs: 3,
		},
		{
			name:     "returning clause kept",
			prefix:   "INSERT INTO users (username, email, profile_image) VALUES {} RETURNING id",
			rows:     [][]any{{"a", "a@x", nil}, {"b", "b@x", nil}, {"c", "c@x", nil}},
			wantSQL:  "INSERT INTO users (username, email, profile_image) VALUES ($1, $2, $3), ($4, $5, $6), ($7, $8, $9) RETURNING id",
			wantArgs: 9,
		},
		{
			name:      "ragged rows",
			prefix:    "INSERT INTO plays (user_id, song_id) VALUES {}",
			rows:      [][]any{{1, 2}, {3}},
			wantError: ErrRowShape,
		},
		{
			name:      "empty row",
			prefix:    "INSERT INTO plays (user_id, song_id) VALUES {}",
			rows:      [][]any{{}},
			wantError: ErrRowShape,
		},
		{
			name:      "two markers",
			prefix:    "INSERT INTO plays VALUES {} {}",
			rows:      [][]any{{1}},
			wantError: ErrPlaceholder,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := BuildBatch(tc.prefix, tc.rows)
			if tc.wantError != nil {
				if !errors.Is(err, tc.wantError) {
					t.Fatalf("expected %v, got %v", tc.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildBatch error: %v", err)
			}
			if sql != tc.wantSQL {
				t.Fatalf("sql mismatch:\n got %s\nwant %s", sql, tc.wantSQL)
			}
			if len(args) != tc.wantArgs {
				t.Fatalf("expected %d args, got %d", tc.wantArgs, len(args))
			}
		})
	}
}

func TestBuildBatchNeverInlinesValues(t *testing.T) {
	hostile := "x'); DROP TABLE users; --"
	sql, args, err := BuildBatch("INSERT INTO artists (name) VALUES {}", [][]any{{hostile}})
	if err != nil {
		t.Fatalf("BuildBatch error: %v", err)
	}
	if strings.Contains(sql, "DROP") {
		t.Fatalf("value leaked into SQL text: %s", sql)
	}
	if args[0] != hostile {
		t.Fatalf("expected value bound as argument, got %v", args)
	}
}

func TestBuildBatchParameterLimit(t *testing.T) {
	rows := make([][]any, 0, 22000)
	for i := 0; i < 22000; i++ {
		rows = append(rows, []any{i, i, i})
	}
	if _, _, err := BuildBatch("INSERT INTO plays (user_id, song_id, played_at) VALUES {}", rows); !errors.Is(err, ErrTooManyParams) {
		t.Fatalf("expected ErrTooManyParams, got %v", err)
	}
}

func TestBatchInsertEmptySkipsDatabase(t *testing.T) {
	p, mock := newMockProvider(t)

	rows, err := p.BatchInsert(context.Background(), "INSERT INTO users (username) VALUES {} RETURNING id", nil)
	if err != nil {
		t.Fatalf("BatchInsert error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBatchInsertReturningPreservesOrder(t *testing.T) {
	p, mock := newMockProvider(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO artists (name, country) VALUES ($1, $2), ($3, $4), ($5, $6) RETURNING id, name").
		WithArgs("Ada", "UK", "Bo", "Japan", "Cy", "Brazil").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(7), "Ada").
			AddRow(int64(8), "Bo").
			AddRow(int64(9), "Cy"))
	mock.ExpectCommit()

	rows, err := p.BatchInsert(context.Background(),
		"INSERT INTO artists (name, country) VALUES {} RETURNING id, name",
		[][]any{{"Ada", "UK"}, {"Bo", "Japan"}, {"Cy", "Brazil"}},
	)
	if err != nil {
		t.Fatalf("BatchInsert error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []string{"Ada", "Bo", "Cy"} {
		if rows[i]["name"] != want {
			t.Fatalf("row %d: expected name %q, got %v", i, want, rows[i]["name"])
		}
	}

	ids, err := IDs(rows, "id")
	if err != nil {
		t.Fatalf("IDs error: %v", err)
	}
	if ids[0] != 7 || ids[1] != 8 || ids[2] != 9 {
		t.Fatalf("unexpected ids %v", ids)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBatchInsertWithoutOutputReturnsEmpty(t *testing.T) {
	p, mock := newMockProvider(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO follows (user_id, playlist_id) VALUES ($1, $2)").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows(nil))
	mock.ExpectCommit()

	rows, err := p.BatchInsert(context.Background(), "INSERT INTO follows (user_id, playlist_id) VALUES {}", [][]any{{1, 2}})
	if err != nil {
		t.Fatalf("BatchInsert error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBatchInsertRollsBackOnError(t *testing.T) {
	p, mock := newMockProvider(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO plays (user_id, song_id) VALUES ($1, $2)").
		WithArgs(1, 999).
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	_, err := p.BatchInsert(context.Background(), "INSERT INTO plays (user_id, song_id) VALUES {}", [][]any{{1, 999}})
	if err == nil || !strings.Contains(err.Error(), "foreign key") {
		t.Fatalf("expected foreign key error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRowInt64(t *testing.T) {
	row := Row{"a": int64(1), "b": int32(2), "c": []byte("3"), "d": "x", "e": 1.5}

	for col, want := range map[string]int64{"a": 1, "b": 2, "c": 3} {
		got, err := row.Int64(col)
		if err != nil || got != want {
			t.Fatalf("column %s: got %d, %v", col, got, err)
		}
	}
	for _, col := range []string{"d", "e", "missing"} {
		if _, err := row.Int64(col); err == nil {
			t.Fatalf("column %s: expected error", col)
		}
	}
}

func TestClearTablesTruncatesEverythingAtOnce(t *testing.T) {
	p, mock := newMockProvider(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").
		WillReturnRows(sqlmock.NewRows([]string{"tablename"}).
			AddRow("artists").
			AddRow("playlist_songs").
			AddRow("users"))
	mock.ExpectExec(`TRUNCATE TABLE "artists", "playlist_songs", "users" CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := p.ClearTables(context.Background()); err != nil {
		t.Fatalf("ClearTables error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClearTablesNoTables(t *testing.T) {
	p, mock := newMockProvider(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").
		WillReturnRows(sqlmock.NewRows([]string{"tablename"}))
	mock.ExpectCommit()

	if err := p.ClearTables(context.Background()); err != nil {
		t.Fatalf("ClearTables error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecreateDropsChildrenFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	p := New(db)

	mock.ExpectBegin()
	for _, table := range []string{"follows", "plays", "playlist_songs", "playlists", "songs", "artists", "users"} {
		mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE IF EXISTS "` + table + `" CASCADE`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := p.Recreate(context.Background(), Schema()); err != nil {
		t.Fatalf("Recreate error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecreateRollsBackWhenSchemaFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	p := New(db)

	mock.ExpectBegin()
	for range dropOrder {
		mock.ExpectExec("DROP TABLE IF EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("CREATE TABLE broken").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = p.Recreate(context.Background(), "CREATE TABLE broken (")
	if err == nil || !strings.Contains(err.Error(), "apply schema") {
		t.Fatalf("expected apply schema error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSchemaDefinesEveryTable(t *testing.T) {
	ddl := Schema()
	for _, table := range dropOrder {
		if !strings.Contains(ddl, "CREATE TABLE "+table+" (") {
			t.Fatalf("schema missing table %s", table)
		}
	}
}
