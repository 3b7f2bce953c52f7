// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/verset/middleware"
	"github.com/danielhkuo/verset/models"
	"github.com/danielhkuo/verset/store"
	"github.com/danielhkuo/verset/testutil"
)

func TestLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	sessions := testutil.GetTestSessions()
	handler := NewAdminHandler(st, sessions)

	testutil.CreateTestAdmin(t, conn, "admin", "admin123")

	// Wrong password
	req := testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Missing fields
	req = testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{Username: "admin"})
	w = httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Correct credentials
	req = testutil.MakeRequest("POST", "/api/admin/login", models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	w = httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("expected success=true")
	}

	// Login must set a verifiable session cookie
	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected login to set the session cookie")
	}
	if _, ok := sessions.Verify(sessionCookie.Value); !ok {
		t.Error("expected the session cookie to carry a valid token")
	}
}

func TestCheckAndLogout(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	sessions := testutil.GetTestSessions()
	handler := NewAdminHandler(st, sessions)

	adminID := testutil.CreateTestAdmin(t, conn, "admin", "admin123")

	// Check without a session
	req := testutil.MakeRequest("GET", "/api/admin/check", nil)
	w := httptest.NewRecorder()
	handler.Check(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var check models.CheckResponse
	testutil.AssertJSON(t, w, &check)
	if check.LoggedIn {
		t.Error("expected logged_in=false without a session")
	}

	// Check with a session
	req = testutil.MakeRequest("GET", "/api/admin/check", nil, testutil.AdminCookie(sessions, adminID))
	w = httptest.NewRecorder()
	handler.Check(w, req)

	testutil.AssertJSON(t, w, &check)
	if !check.LoggedIn {
		t.Error("expected logged_in=true with a valid session")
	}

	// Logout clears the cookie
	req = testutil.MakeRequest("POST", "/api/admin/logout", nil, testutil.AdminCookie(sessions, adminID))
	w = httptest.NewRecorder()
	handler.Logout(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected logout to expire the session cookie")
	}
}

func TestVerseManagementScenario(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewVerseHandler(st)

	testutil.CreateTestVerse(t, conn, "Old verse", "Ref 1:1", baseTime)

	// Add a verse
	req := testutil.MakeRequest("POST", "/api/admin/verses", models.AddVerseRequest{
		Text:      "text",
		Reference: "Ref 1:1",
	})
	w := httptest.NewRecorder()
	handler.Add(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var added models.AddVerseResponse
	testutil.AssertJSON(t, w, &added)
	if added.VerseID == "" {
		t.Fatal("expected verse_id in add response")
	}

	// List includes it first (most recent)
	req = testutil.MakeRequest("GET", "/api/admin/verses", nil)
	w = httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var listed models.VersesResponse
	testutil.AssertJSON(t, w, &listed)
	if len(listed.Verses) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(listed.Verses))
	}
	if listed.Verses[0].ID != added.VerseID {
		t.Errorf("expected the new verse first, got %s", listed.Verses[0].ID)
	}
	if listed.Stats.TotalVerses != 2 {
		t.Errorf("expected stats.total_verses=2, got %d", listed.Stats.TotalVerses)
	}

	// Delete it
	req = testutil.MakeRequest("DELETE", "/api/admin/verses/"+added.VerseID, nil)
	req.SetPathValue("id", added.VerseID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Gone from the listing
	req = testutil.MakeRequest("GET", "/api/admin/verses", nil)
	w = httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertJSON(t, w, &listed)
	for _, v := range listed.Verses {
		if v.ID == added.VerseID {
			t.Error("deleted verse still in listing")
		}
	}

	// Deleting again is 404
	req = testutil.MakeRequest("DELETE", "/api/admin/verses/"+added.VerseID, nil)
	req.SetPathValue("id", added.VerseID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAddVerseValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewVerseHandler(st)

	testCases := []struct {
		name string
		req  models.AddVerseRequest
	}{
		{"empty text", models.AddVerseRequest{Text: "", Reference: "Ref 1:1"}},
		{"empty reference", models.AddVerseRequest{Text: "text", Reference: ""}},
		{"whitespace text", models.AddVerseRequest{Text: "   ", Reference: "Ref 1:1"}},
		{"whitespace reference", models.AddVerseRequest{Text: "text", Reference: "\t"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/verses", tc.req)
			w := httptest.NewRecorder()
			handler.Add(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestListDrawsWithDeletedVerse(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	sessions := testutil.GetTestSessions()
	adminHandler := NewAdminHandler(st, sessions)
	drawHandler := NewDrawHandler(st)
	verseHandler := NewVerseHandler(st)

	verseID := testutil.CreateTestVerse(t, conn, "Doomed verse", "Ref 1:1", baseTime)

	// Someone draws the verse
	req := testutil.MakeRequest("POST", "/api/draw-verse", models.DrawRequest{Email: "user@example.com"})
	w := httptest.NewRecorder()
	drawHandler.Draw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Admin deletes it
	req = testutil.MakeRequest("DELETE", "/api/admin/verses/"+verseID, nil)
	req.SetPathValue("id", verseID)
	w = httptest.NewRecorder()
	verseHandler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Draw history still lists the record, with a gap where the verse was
	req = testutil.MakeRequest("GET", "/api/admin/draws", nil)
	w = httptest.NewRecorder()
	adminHandler.ListDraws(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var draws models.DrawsResponse
	testutil.AssertJSON(t, w, &draws)
	if len(draws.Draws) != 1 {
		t.Fatalf("expected 1 draw record, got %d", len(draws.Draws))
	}
	if draws.Draws[0].Email != "user@example.com" {
		t.Errorf("unexpected email %s", draws.Draws[0].Email)
	}
	if draws.Draws[0].Verse != nil {
		t.Error("expected verse to be null for a deleted verse")
	}
}
