// Package database owns connection handling and the bulk/maintenance
// statements shared by the API server and the musicdb tool.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"musiccatalog/internal/config"
)

const driverName = "pgx"

// Querier is satisfied by both *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Provider hands out one dedicated connection per logical operation.
type Provider struct {
	db *sql.DB
}

// Open connects to Postgres using the configured credentials. A failed ping
// is returned to the caller; nothing is retried.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Provider, error) {
	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return New(db), nil
}

// New wraps an existing handle.
func New(db *sql.DB) *Provider {
	return &Provider{db: db}
}

// Ping verifies the database is reachable.
func (p *Provider) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Close releases the underlying handle.
func (p *Provider) Close() error {
	return p.db.Close()
}

// WithConn runs fn on a connection that is released on every exit path.
func (p *Provider) WithConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// WithTx runs fn inside a transaction on its own connection. The transaction
// commits when fn returns nil and is rolled back otherwise, including on panic.
func (p *Provider) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return p.WithConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer func() {
			if tx != nil {
				_ = tx.Rollback()
			}
		}()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		tx = nil

		return nil
	})
}
