// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/verset/db"
	"github.com/danielhkuo/verset/models"
)

// NormalizeEmail lowercases and trims an email so that addresses differing
// only in case or surrounding whitespace map to the same draw record.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DrawVerse assigns a verse to an email, at most once per normalized email.
//
// If the email already has a draw record, that record's verse is returned
// with AlreadyDrawn set; repeated calls are side-effect free. Otherwise one
// verse is chosen uniformly at random from the pool (verses stay in the
// pool, draws by other emails don't deplete it) and a draw record is
// inserted. When two concurrent calls race on the same email, the UNIQUE
// constraint on draw.email lets exactly one insert through; the loser
// detects the violation and re-reads the winner's record.
//
// The email is assumed syntactically valid; the HTTP boundary validates
// format before calling. Returns ErrNoVerses when the pool is empty.
func (s *Store) DrawVerse(email, firstName, lastName string) (models.DrawResult, error) {
	email = NormalizeEmail(email)

	// Idempotent re-read path
	existing, err := s.GetDrawByEmail(email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.DrawResult{}, err
	}

	verses, err := s.ListVerses()
	if err != nil {
		return models.DrawResult{}, err
	}
	if len(verses) == 0 {
		return models.DrawResult{}, ErrNoVerses
	}

	chosen := verses[rand.IntN(len(verses))]

	var first, last sql.NullString
	if firstName = strings.TrimSpace(firstName); firstName != "" {
		first = sql.NullString{String: firstName, Valid: true}
	}
	if lastName = strings.TrimSpace(lastName); lastName != "" {
		last = sql.NullString{String: lastName, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO draw (id, email, verse_id, first_name, last_name, drawn_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), email, chosen.ID, first, last, time.Now())

	if err != nil {
		if db.IsUniqueViolation(err) {
			// Lost the race: a concurrent call inserted first. Its row is
			// committed, so a single re-read must find it.
			winner, rerr := s.GetDrawByEmail(email)
			if rerr != nil {
				return models.DrawResult{}, fmt.Errorf("draw conflict re-read failed: %w", rerr)
			}
			return winner, nil
		}
		return models.DrawResult{}, fmt.Errorf("failed to insert draw: %w", err)
	}

	return models.DrawResult{Verse: chosen, AlreadyDrawn: false}, nil
}

// GetDrawByEmail returns the existing draw for a normalized email, tagged
// AlreadyDrawn. If the drawn verse has since been deleted, the result keeps
// the verse ID but carries empty text and reference; a dangling record must
// never trigger a second draw.
func (s *Store) GetDrawByEmail(email string) (models.DrawResult, error) {
	var verseID string
	var text, reference sql.NullString
	var createdAt sql.NullTime

	err := s.db.QueryRow(`
		SELECT d.verse_id, v.text, v.reference, v.created_at
		FROM draw d
		LEFT JOIN verse v ON d.verse_id = v.id
		WHERE d.email = $1
	`, email).Scan(&verseID, &text, &reference, &createdAt)

	if err == sql.ErrNoRows {
		return models.DrawResult{}, ErrNotFound
	}
	if err != nil {
		return models.DrawResult{}, fmt.Errorf("failed to query draw: %w", err)
	}

	return models.DrawResult{
		Verse: models.Verse{
			ID:        verseID,
			Text:      text.String,
			Reference: reference.String,
			CreatedAt: createdAt.Time,
		},
		AlreadyDrawn: true,
	}, nil
}
