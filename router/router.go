// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/verset/auth"
	"github.com/danielhkuo/verset/handlers"
	"github.com/danielhkuo/verset/middleware"
	"github.com/danielhkuo/verset/store"
)

func NewRouter(st *store.Store, sessions *auth.Sessions) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	drawHandler := handlers.NewDrawHandler(st)
	adminHandler := handlers.NewAdminHandler(st, sessions)
	verseHandler := handlers.NewVerseHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public draw endpoint
	mux.HandleFunc("POST /api/draw-verse", middleware.WithLogging(drawHandler.Draw))

	// Admin session
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /api/admin/logout", middleware.WithLogging(adminHandler.Logout))
	mux.HandleFunc("GET /api/admin/check", middleware.WithLogging(adminHandler.Check))

	// Admin panel (session-gated)
	mux.HandleFunc("GET /api/admin/verses", middleware.WithLogging(middleware.RequireAdmin(sessions, verseHandler.List)))
	mux.HandleFunc("POST /api/admin/verses", middleware.WithLogging(middleware.RequireAdmin(sessions, verseHandler.Add)))
	mux.HandleFunc("DELETE /api/admin/verses/{id}", middleware.WithLogging(middleware.RequireAdmin(sessions, verseHandler.Delete)))
	mux.HandleFunc("GET /api/admin/draws", middleware.WithLogging(middleware.RequireAdmin(sessions, adminHandler.ListDraws)))

	// Root endpoint. {$} matches "/" exactly, so unknown paths get 404
	// and wrong-method requests on defined routes get 405.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("verset API v1"))
	})

	return mux
}
