// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method-and-pattern syntax on http.ServeMux:

	mux := router.NewRouter(st, sessions)

# Public

  - GET  /health
  - GET  /
  - POST /api/draw-verse

# Admin session

  - POST /api/admin/login
  - POST /api/admin/logout
  - GET  /api/admin/check

# Admin panel (session-gated via middleware.RequireAdmin)

  - GET    /api/admin/verses
  - POST   /api/admin/verses
  - DELETE /api/admin/verses/{id}
  - GET    /api/admin/draws

Every API route is wrapped in middleware.WithLogging.
*/
package router
