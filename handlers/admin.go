// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/verset/auth"
	"github.com/danielhkuo/verset/middleware"
	"github.com/danielhkuo/verset/models"
	"github.com/danielhkuo/verset/store"
)

type AdminHandler struct {
	store    *store.Store
	sessions *auth.Sessions
}

func NewAdminHandler(st *store.Store, sessions *auth.Sessions) *AdminHandler {
	return &AdminHandler{store: st, sessions: sessions}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	adminID, err := h.store.VerifyAdmin(req.Username, req.Password)
	if errors.Is(err, store.ErrBadCredentials) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to verify admin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.SetSessionCookie(w, h.sessions.Issue(adminID))

	slog.Info("admin logged in", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Message: "Login successful",
	})
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Success: true})
}

// Check handles GET /api/admin/check
func (h *AdminHandler) Check(w http.ResponseWriter, r *http.Request) {
	loggedIn := middleware.AdminID(h.sessions, r) != ""
	middleware.JSONResponse(w, http.StatusOK, models.CheckResponse{LoggedIn: loggedIn})
}

// ListDraws handles GET /api/admin/draws
func (h *AdminHandler) ListDraws(w http.ResponseWriter, r *http.Request) {
	draws, err := h.store.ListDraws()
	if err != nil {
		slog.Error("failed to list draws", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawsResponse{
		Success: true,
		Draws:   draws,
	})
}
