// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type DrawRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddVerseRequest struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// Response types

type DrawResponse struct {
	Success      bool  `json:"success"`
	Verse        Verse `json:"verse"`
	AlreadyDrawn bool  `json:"already_drawn"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CheckResponse struct {
	LoggedIn bool `json:"logged_in"`
}

type VersesResponse struct {
	Success bool    `json:"success"`
	Verses  []Verse `json:"verses"`
	Stats   Stats   `json:"stats"`
}

type DrawsResponse struct {
	Success bool        `json:"success"`
	Draws   []DrawEntry `json:"draws"`
}

type AddVerseResponse struct {
	Success bool   `json:"success"`
	VerseID string `json:"verse_id"`
	Message string `json:"message,omitempty"`
}

type DeleteVerseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Verse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

// DrawResult pairs the verse assigned to an email with whether the
// assignment already existed before the call.
type DrawResult struct {
	Verse        Verse `json:"verse"`
	AlreadyDrawn bool  `json:"already_drawn"`
}

// DrawEntry is one row of the admin draw history. Verse is nil when the
// drawn verse has since been deleted.
type DrawEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	VerseID   string    `json:"verse_id"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	DrawnAt   time.Time `json:"drawn_at"`
	Verse     *Verse    `json:"verse"`
}

type Stats struct {
	TotalDraws  int `json:"total_draws"`
	TotalVerses int `json:"total_verses"`
}

type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
