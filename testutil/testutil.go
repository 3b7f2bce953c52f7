// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/verset/auth"
	"github.com/danielhkuo/verset/db"
	"github.com/danielhkuo/verset/middleware"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir with
// the full schema. No seed data; tests insert exactly what they need.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "verset_test.db")
	conn, err := db.Open(db.TypeSqlite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSqlite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestSessions returns a session signer with a fixed test secret.
func GetTestSessions() *auth.Sessions {
	return auth.NewSessions("test-session-secret")
}

// CreateTestVerse inserts a verse and returns its ID. createdAt controls
// list ordering, which is most-recent-first.
func CreateTestVerse(t *testing.T, conn *sql.DB, text, reference string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO verse (id, text, reference, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, text, reference, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test verse: %v", err)
	}
	return id
}

// CreateTestAdmin inserts an admin credential row and returns its ID.
func CreateTestAdmin(t *testing.T, conn *sql.DB, username, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	id := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO admin (id, username, password_hash)
		VALUES ($1, $2, $3)
	`, id, username, hash)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return id
}

// AdminCookie builds a valid session cookie for requests to gated routes.
func AdminCookie(sessions *auth.Sessions, adminID string) *http.Cookie {
	return &http.Cookie{
		Name:  middleware.SessionCookie,
		Value: sessions.Issue(adminID),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
