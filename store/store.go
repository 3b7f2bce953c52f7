// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/verset/auth"
	"github.com/danielhkuo/verset/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNoVerses       = errors.New("no verses available")
	ErrBadCredentials = errors.New("invalid username or password")
)

// Store is the typed storage API. All SQL lives here; handlers never see
// raw rows, only models types.
type Store struct {
	db *sql.DB
}

func New(conn *sql.DB) *Store {
	return &Store{db: conn}
}

// ListVerses returns the full pool, most recent first.
func (s *Store) ListVerses() ([]models.Verse, error) {
	rows, err := s.db.Query(`
		SELECT id, text, reference, created_at
		FROM verse
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query verses: %w", err)
	}
	defer rows.Close()

	verses := []models.Verse{}
	for rows.Next() {
		var v models.Verse
		if err := rows.Scan(&v.ID, &v.Text, &v.Reference, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan verse: %w", err)
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

// GetVerse returns a single verse by ID.
func (s *Store) GetVerse(id string) (models.Verse, error) {
	var v models.Verse
	err := s.db.QueryRow(`
		SELECT id, text, reference, created_at FROM verse WHERE id = $1
	`, id).Scan(&v.ID, &v.Text, &v.Reference, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Verse{}, ErrNotFound
	}
	if err != nil {
		return models.Verse{}, fmt.Errorf("failed to query verse: %w", err)
	}
	return v, nil
}

// AddVerse inserts a new verse and returns it. Input is assumed trimmed and
// non-empty; the HTTP boundary validates before calling.
func (s *Store) AddVerse(text, reference string) (models.Verse, error) {
	v := models.Verse{
		ID:        uuid.NewString(),
		Text:      text,
		Reference: reference,
		CreatedAt: time.Now(),
	}
	_, err := s.db.Exec(`
		INSERT INTO verse (id, text, reference, created_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.Text, v.Reference, v.CreatedAt)
	if err != nil {
		return models.Verse{}, fmt.Errorf("failed to insert verse: %w", err)
	}
	return v, nil
}

// DeleteVerse removes a verse from the pool. Returns ErrNotFound when no
// such verse exists. Draw records pointing at the verse are left in place.
func (s *Store) DeleteVerse(id string) error {
	res, err := s.db.Exec(`DELETE FROM verse WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete verse: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDraws returns all draw records joined with their verse, most recent
// first. A draw whose verse was deleted is returned with Verse nil.
func (s *Store) ListDraws() ([]models.DrawEntry, error) {
	rows, err := s.db.Query(`
		SELECT d.id, d.email, d.verse_id, d.first_name, d.last_name, d.drawn_at,
		       v.id, v.text, v.reference, v.created_at
		FROM draw d
		LEFT JOIN verse v ON d.verse_id = v.id
		ORDER BY d.drawn_at DESC, d.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	draws := []models.DrawEntry{}
	for rows.Next() {
		var e models.DrawEntry
		var firstName, lastName sql.NullString
		var verseID, verseText, verseRef sql.NullString
		var verseCreated sql.NullTime

		err := rows.Scan(
			&e.ID, &e.Email, &e.VerseID, &firstName, &lastName, &e.DrawnAt,
			&verseID, &verseText, &verseRef, &verseCreated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}

		if firstName.Valid {
			e.FirstName = &firstName.String
		}
		if lastName.Valid {
			e.LastName = &lastName.String
		}
		if verseID.Valid {
			e.Verse = &models.Verse{
				ID:        verseID.String,
				Text:      verseText.String,
				Reference: verseRef.String,
				CreatedAt: verseCreated.Time,
			}
		}

		draws = append(draws, e)
	}
	return draws, rows.Err()
}

// Stats returns aggregate counts for the admin dashboard.
func (s *Store) Stats() (models.Stats, error) {
	var stats models.Stats
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM draw`).Scan(&stats.TotalDraws); err != nil {
		return models.Stats{}, fmt.Errorf("failed to count draws: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM verse`).Scan(&stats.TotalVerses); err != nil {
		return models.Stats{}, fmt.Errorf("failed to count verses: %w", err)
	}
	return stats, nil
}

// VerifyAdmin checks a username/password pair against the admin table and
// returns the admin row ID on success. The ID is stable across calls, so it
// can be embedded in session tokens.
func (s *Store) VerifyAdmin(username, password string) (string, error) {
	var id, hash string
	err := s.db.QueryRow(`
		SELECT id, password_hash FROM admin WHERE username = $1
	`, username).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return "", ErrBadCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to query admin: %w", err)
	}

	if !auth.VerifyPassword(password, hash) {
		return "", ErrBadCredentials
	}
	return id, nil
}
