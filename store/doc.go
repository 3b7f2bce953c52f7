// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the typed storage layer. Handlers call its methods and never
touch SQL or raw rows directly.

# The Draw Operation

DrawVerse is the one operation with a consistency concern:

	result, err := st.DrawVerse(email, firstName, lastName)

It normalizes the email, returns the existing assignment when there is one
(idempotent re-read), and otherwise picks a verse uniformly at random and
inserts a draw record. Concurrent calls for the same email are resolved by
the database's UNIQUE constraint: the losing insert detects the violation
and re-reads the winner's record. No in-process locking is involved, so the
guarantee holds across processes too.

# Errors

Sentinel errors callers branch on with errors.Is:

  - ErrNotFound: lookup or delete on a nonexistent row
  - ErrNoVerses: draw attempted against an empty pool
  - ErrBadCredentials: admin username/password mismatch

Anything else is a wrapped storage failure and maps to a 5xx at the boundary.

# Dangling Verses

Deleting a verse does not touch draw records. GetDrawByEmail and ListDraws
LEFT JOIN the verse table and tolerate the gap: the draw entry survives with
nil (or empty) verse fields.
*/
package store
