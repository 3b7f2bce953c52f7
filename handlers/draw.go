// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/danielhkuo/verset/middleware"
	"github.com/danielhkuo/verset/models"
	"github.com/danielhkuo/verset/store"
)

// emailPattern accepts local@domain with a dotted domain and a TLD of at
// least two letters. Anything else is rejected before the store is touched.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type DrawHandler struct {
	store *store.Store
}

func NewDrawHandler(st *store.Store) *DrawHandler {
	return &DrawHandler{store: st}
}

// Draw handles POST /api/draw-verse
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req models.DrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	if !emailPattern.MatchString(email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	result, err := h.store.DrawVerse(email, req.FirstName, req.LastName)
	if errors.Is(err, store.ErrNoVerses) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No verses available. Contact the administrator.")
		return
	}
	if err != nil {
		slog.Error("failed to draw verse", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("verse drawn",
		"email", store.NormalizeEmail(email),
		"verse_id", result.Verse.ID,
		"already_drawn", result.AlreadyDrawn,
	)

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Success:      true,
		Verse:        result.Verse,
		AlreadyDrawn: result.AlreadyDrawn,
	})
}
