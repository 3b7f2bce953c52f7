// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionTTL is how long an admin session stays valid after login.
const SessionTTL = 12 * time.Hour

// HashPassword hashes a password for storage in the database.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against the hash from the database.
func VerifyPassword(pw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type clock interface {
	Now() time.Time
}

type realclock struct{}

func (realclock) Now() time.Time {
	return time.Now()
}

// Sessions issues and verifies admin session tokens. Tokens are HMAC-signed
// and carry their own expiry, so no session state is kept server-side.
type Sessions struct {
	key   []byte
	clock clock
}

func NewSessions(secret string) *Sessions {
	return &Sessions{
		key:   []byte(secret),
		clock: realclock{},
	}
}

type sessionBody struct {
	AdminID string `json:"a"`
	Expires int64  `json:"e"`
}

// Issue creates a signed session token for the given admin ID.
func (s *Sessions) Issue(adminID string) string {
	body := sessionBody{
		AdminID: adminID,
		Expires: s.clock.Now().Add(SessionTTL).Unix(),
	}

	bs, err := json.Marshal(&body)
	if err != nil {
		// Marshaling a two-field struct cannot fail.
		panic(err)
	}

	return base64.URLEncoding.EncodeToString(bs) +
		"." +
		base64.URLEncoding.EncodeToString(sign(bs, s.key))
}

// Verify checks a token's signature and expiry and returns the admin ID it
// was issued for.
func (s *Sessions) Verify(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return "", false
	}

	bs, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", false
	}

	sig, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}

	if subtle.ConstantTimeCompare(sig, sign(bs, s.key)) != 1 {
		return "", false
	}

	var body sessionBody
	if err := json.Unmarshal(bs, &body); err != nil {
		return "", false
	}

	if time.Unix(body.Expires, 0).Before(s.clock.Now()) {
		return "", false
	}

	return body.AdminID, true
}

func sign(bs, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(bs)
	return h.Sum(nil)
}
