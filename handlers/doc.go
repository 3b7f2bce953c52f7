// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Handlers

  - DrawHandler: POST /api/draw-verse, which validates the email format at
    the boundary and then delegates to store.DrawVerse
  - AdminHandler: login/logout/check session endpoints and the draw history
    listing
  - VerseHandler: verse pool CRUD for the admin panel

# Error Mapping

Store sentinels map onto the HTTP taxonomy:

  - invalid or missing input        -> 400
  - store.ErrBadCredentials / no session -> 401
  - store.ErrNotFound               -> 404
  - store.ErrNoVerses               -> 404 (admin must seed verses)
  - anything else                   -> 500, details logged server-side only

"Already drawn" is not an error: repeat draws return 200 with
already_drawn=true.

Session gating itself lives in middleware.RequireAdmin; handlers here assume
it already ran for the admin routes.
*/
package handlers
