// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - DrawRequest: email, first_name, last_name
  - LoginRequest: username, password
  - AddVerseRequest: text, reference

# Response Types

Types for JSON responses:

  - DrawResponse: success, verse, already_drawn
  - LoginResponse: success, message
  - CheckResponse: logged_in
  - VersesResponse: success, verses, stats
  - DrawsResponse: success, draws
  - AddVerseResponse: success, verse_id, message
  - DeleteVerseResponse: success, message
  - ErrorResponse: success (always false), error

# Domain Types

Internal data structures:

  - Verse: one verse in the pool
  - DrawResult: a verse paired with the already-drawn flag
  - DrawEntry: one row of draw history, verse nil if deleted
  - Stats: total draws and total verses
  - Admin: admin credential row (hash never serialized)
*/
package models
