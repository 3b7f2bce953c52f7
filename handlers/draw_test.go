// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/verset/models"
	"github.com/danielhkuo/verset/store"
	"github.com/danielhkuo/verset/testutil"
)

var baseTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func TestDraw(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewDrawHandler(st)

	for i := 0; i < 8; i++ {
		testutil.CreateTestVerse(t, conn, "Verse text", "Ref 1:1", baseTime.Add(time.Duration(i)*time.Minute))
	}

	// First draw
	req := testutil.MakeRequest("POST", "/api/draw-verse", models.DrawRequest{
		Email:     "Foo@Bar.com",
		FirstName: "Foo",
	})
	w := httptest.NewRecorder()
	handler.Draw(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var first models.DrawResponse
	testutil.AssertJSON(t, w, &first)
	if !first.Success {
		t.Error("expected success=true")
	}
	if first.AlreadyDrawn {
		t.Error("expected already_drawn=false on first draw")
	}
	if first.Verse.ID == "" || first.Verse.Text == "" || first.Verse.Reference == "" {
		t.Errorf("expected a complete verse, got %+v", first.Verse)
	}

	// Second draw, same email modulo case and whitespace
	req = testutil.MakeRequest("POST", "/api/draw-verse", models.DrawRequest{
		Email: "  foo@bar.com ",
	})
	w = httptest.NewRecorder()
	handler.Draw(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var second models.DrawResponse
	testutil.AssertJSON(t, w, &second)
	if !second.AlreadyDrawn {
		t.Error("expected already_drawn=true on repeat draw")
	}
	if second.Verse.ID != first.Verse.ID {
		t.Errorf("expected same verse on repeat draw: %s vs %s", second.Verse.ID, first.Verse.ID)
	}
}

func TestDrawInvalidEmail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewDrawHandler(st)
	testutil.CreateTestVerse(t, conn, "Verse text", "Ref 1:1", baseTime)

	testCases := []struct {
		name  string
		email string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no at sign", "foobar.com"},
		{"no domain dot", "foo@barcom"},
		{"one char tld", "foo@bar.c"},
		{"domain only", "@bar.com"},
		{"spaces inside", "foo bar@baz.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/draw-verse", models.DrawRequest{Email: tc.email})
			w := httptest.NewRecorder()
			handler.Draw(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	// No record may exist after any of the failed attempts
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM draw`).Scan(&count); err != nil {
		t.Fatalf("Failed to count draws: %v", err)
	}
	if count != 0 {
		t.Errorf("invalid emails must not create draw records, found %d", count)
	}
}

func TestDrawEmptyPool(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewDrawHandler(st)

	req := testutil.MakeRequest("POST", "/api/draw-verse", models.DrawRequest{Email: "someone@example.com"})
	w := httptest.NewRecorder()
	handler.Draw(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success {
		t.Error("expected success=false")
	}
}

func TestDrawInvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewDrawHandler(st)

	req := httptest.NewRequest("POST", "/api/draw-verse", nil)
	w := httptest.NewRecorder()
	handler.Draw(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
