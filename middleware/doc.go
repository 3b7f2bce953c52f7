// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps handlers with structured request/completion logging:

	mux.HandleFunc("POST /api/draw-verse", middleware.WithLogging(handler.Draw))

# JSON Helpers

JSONResponse and ErrorResponse write consistent JSON bodies. Errors always
have the shape {"success": false, "error": "..."}. ParseJSONBody decodes
request bodies.

# Admin Sessions

RequireAdmin gates handlers behind the verset_session cookie:

	mux.HandleFunc("GET /api/admin/verses",
		middleware.WithLogging(middleware.RequireAdmin(sessions, handler.List)))

SetSessionCookie and ClearSessionCookie manage the cookie on login/logout.
The cookie is HTTP-only and SameSite=Lax; the token inside it is verified
by the auth package on every request.

# CORS

CORS allows credentialed cross-origin requests from an allowlist of
frontend origins and answers OPTIONS preflights. Origins outside the
list receive no CORS headers.
*/
package middleware
