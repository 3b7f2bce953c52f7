// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/verset/middleware"
	"github.com/danielhkuo/verset/models"
	"github.com/danielhkuo/verset/store"
)

type VerseHandler struct {
	store *store.Store
}

func NewVerseHandler(st *store.Store) *VerseHandler {
	return &VerseHandler{store: st}
}

// List handles GET /api/admin/verses
func (h *VerseHandler) List(w http.ResponseWriter, r *http.Request) {
	verses, err := h.store.ListVerses()
	if err != nil {
		slog.Error("failed to list verses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats, err := h.store.Stats()
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VersesResponse{
		Success: true,
		Verses:  verses,
		Stats:   stats,
	})
}

// Add handles POST /api/admin/verses
func (h *VerseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddVerseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	reference := strings.TrimSpace(req.Reference)

	if text == "" || reference == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Text and reference are required")
		return
	}

	verse, err := h.store.AddVerse(text, reference)
	if err != nil {
		slog.Error("failed to add verse", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add verse")
		return
	}

	slog.Info("verse added", "verse_id", verse.ID, "reference", verse.Reference)

	middleware.JSONResponse(w, http.StatusCreated, models.AddVerseResponse{
		Success: true,
		VerseID: verse.ID,
		Message: "Verse added successfully",
	})
}

// Delete handles DELETE /api/admin/verses/{id}
func (h *VerseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	verseID := r.PathValue("id")
	if verseID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "verse id is required")
		return
	}

	err := h.store.DeleteVerse(verseID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Verse not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete verse", "error", err, "verse_id", verseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete verse")
		return
	}

	slog.Info("verse deleted", "verse_id", verseID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteVerseResponse{
		Success: true,
		Message: "Verse deleted",
	})
}
