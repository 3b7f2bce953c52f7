// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and admin session tokens.

# Passwords

Admin passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(pw)
	ok := auth.VerifyPassword(pw, hash)

# Session Tokens

Session tokens are stateless: an HMAC-SHA256 signed payload carrying the
admin ID and an expiry timestamp:

	sessions := auth.NewSessions(cfg.SessionSecret)
	token := sessions.Issue(adminID)
	adminID, ok := sessions.Verify(token)

The token format is base64(body).base64(signature). Verification uses a
constant-time compare and rejects expired or tampered tokens. Because the
server keeps no session table, logout is purely cookie deletion; a stolen
token stays valid until its expiry (SessionTTL, 12 hours).
*/
package auth
