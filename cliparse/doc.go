// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags override environment variables, which override defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - Port (-p, PORT): server port, default 5000
  - DatabaseURL (-d, DATABASE_URL): postgres DSN or sqlite file path
  - DatabaseType (-t, DATABASE_TYPE): "sqlite" or "postgres"; defaults to
    postgres when DATABASE_URL is set, sqlite (file verset.db) otherwise
  - SessionSecret (-secret, SECRET_KEY): required, signs admin session cookies

Missing SECRET_KEY is a hard error. The server is not allowed to start with
an unsigned session cookie.
*/
package cliparse
