// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and seeding.

# Backends

Two backends are supported, selected by explicit configuration (never by
ambient globals):

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - postgres via github.com/lib/pq (production)
  - sqlite via modernc.org/sqlite (local development and tests)

The sqlite pool is capped at one open connection so concurrent writers
queue instead of failing.

# Schema Creation

CreateSchema initializes all required tables for the chosen dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - verse: the pool of drawable verses
  - draw: one row per email, UNIQUE(email) enforced by the database
  - admin: admin credentials (bcrypt hashes)

draw.verse_id intentionally has no ON DELETE action: deleting a verse leaves
existing draw rows pointing at a gone verse, and read paths tolerate that.

# Seeding

Seed inserts the default admin account and eight starter verses, guarded by
COUNT checks so it is idempotent across restarts.

# Constraint Errors

IsUniqueViolation classifies uniqueness failures from either backend
(pq error code 23505, sqlite "UNIQUE constraint failed"). The draw path
uses it to detect a lost insert race.
*/
package db
