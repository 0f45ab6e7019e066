package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// dropOrder lists catalog tables children first.
var dropOrder = []string{
	"follows",
	"plays",
	"playlist_songs",
	"playlists",
	"songs",
	"artists",
	"users",
}

// Schema returns the embedded catalog DDL.
func Schema() string {
	return schemaSQL
}

// ClearTables truncates every table in the public schema in a single
// statement, so either all tables are emptied or none are.
func (p *Provider) ClearTables(ctx context.Context) error {
	return p.WithTx(ctx, func(tx *sql.Tx) error {
		tables, err := publicTables(ctx, tx)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			return nil
		}

		quoted := make([]string, len(tables))
		for i, table := range tables {
			quoted[i] = pq.QuoteIdentifier(table)
		}

		if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(quoted, ", ")+" CASCADE"); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}
		return nil
	})
}

// Recreate drops the catalog tables and applies ddl verbatim in one transaction.
func (p *Provider) Recreate(ctx context.Context, ddl string) error {
	return p.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range dropOrder {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+pq.QuoteIdentifier(table)+" CASCADE"); err != nil {
				return fmt.Errorf("drop %s: %w", table, err)
			}
		}

		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		return nil
	})
}

func publicTables(ctx context.Context, q Querier) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename
	`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}
	return tables, nil
}
