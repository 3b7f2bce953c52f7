// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Verset API server.

Verset hands out one randomly assigned verse per email address. A visitor
submits an email once and always gets the same verse back; an admin manages
the verse pool and views draw history.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	SECRET_KEY=... go run main.go

Or with flags:

	go run main.go -p 5000 -d verset.db -t sqlite -secret ...

# Configuration

Required settings:

  - SECRET_KEY (-secret): secret for signing admin session cookies
  - DATABASE_URL (-d): postgres DSN; when unset, a local sqlite file is used

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres

On startup the server creates the schema if missing and seeds the default
admin account (admin / admin123 - change it) plus a starter verse pool,
both idempotently.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (draw, admin session, verse pool)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, session gating, JSON helpers
  - models: Request/response types
  - store: Typed storage layer; owns the draw-assignment operation
  - auth: Password hashing and session tokens
  - db: Connections, schema creation, seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
