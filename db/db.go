// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	_ "modernc.org/sqlite"
)

// Database type constants
const (
	TypeSqlite   = "sqlite"
	TypePostgres = "postgres"
)

// Open opens a connection pool for the configured backend. The caller owns
// the pool and passes it down explicitly; there is no package-level state.
func Open(dbType, dbURL string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
		return sql.Open("postgres", dbURL)
	case TypeSqlite:
		conn, err := sql.Open("sqlite", dbURL)
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer; serialize the pool so concurrent
		// draws queue instead of returning SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == TypePostgres {
		schema = postgresSchema
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure
// from either backend. The draw path relies on this to detect that a
// concurrent call already inserted a record for the same email.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

const postgresSchema = `
-- Verse pool
CREATE TABLE IF NOT EXISTS verse (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    reference TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- One draw per normalized email. The UNIQUE constraint is the race gate:
-- concurrent draws for one email cannot both insert. verse_id carries no
-- ON DELETE action; deleting a verse leaves the draw row dangling.
CREATE TABLE IF NOT EXISTS draw (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    verse_id TEXT NOT NULL,
    first_name TEXT,
    last_name TEXT,
    drawn_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_draw_drawn_at ON draw(drawn_at);

-- Admin credentials
CREATE TABLE IF NOT EXISTS admin (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS verse (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    reference TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS draw (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    verse_id TEXT NOT NULL,
    first_name TEXT,
    last_name TEXT,
    drawn_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_draw_drawn_at ON draw(drawn_at);

CREATE TABLE IF NOT EXISTS admin (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);
`
