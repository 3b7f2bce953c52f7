// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/verset/auth"
)

// Default admin account created on first startup. The password is expected
// to be changed out of band; there is no admin-creation API.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// starterVerses is the initial pool, seeded only into an empty verse table.
var starterVerses = [][2]string{
	{"Car Dieu a tant aimé le monde qu'il a donné son Fils unique, afin que quiconque croit en lui ne périsse point, mais qu'il ait la vie éternelle.", "Jean 3:16"},
	{"L'Éternel est mon berger: je ne manquerai de rien.", "Psaume 23:1"},
	{"Je puis tout par celui qui me fortifie.", "Philippiens 4:13"},
	{"Confie-toi en l'Éternel de tout ton cœur, Et ne t'appuie pas sur ta sagesse.", "Proverbes 3:5"},
	{"Car je connais les projets que j'ai formés sur vous, dit l'Éternel, projets de paix et non de malheur, afin de vous donner un avenir et de l'espérance.", "Jérémie 29:11"},
	{"Ne crains point, car je suis avec toi; Ne promène pas des regards inquiets, car je suis ton Dieu.", "Ésaïe 41:10"},
	{"Venez à moi, vous tous qui êtes fatigués et chargés, et je vous donnerai du repos.", "Matthieu 11:28"},
	{"L'amour est patient, il est plein de bonté; l'amour n'est point envieux; l'amour ne se vante point.", "1 Corinthiens 13:4"},
}

// Seed inserts the default admin account and the starter verse pool.
// Both inserts are count-guarded, so running Seed on every process start
// never duplicates data.
func Seed(db *sql.DB) error {
	var adminCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admin`).Scan(&adminCount); err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}

	if adminCount == 0 {
		hash, err := auth.HashPassword(DefaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		_, err = db.Exec(`
			INSERT INTO admin (id, username, password_hash)
			VALUES ($1, $2, $3)
		`, uuid.NewString(), DefaultAdminUsername, hash)
		if err != nil {
			return fmt.Errorf("failed to seed default admin: %w", err)
		}
	}

	var verseCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM verse`).Scan(&verseCount); err != nil {
		return fmt.Errorf("failed to count verses: %w", err)
	}

	if verseCount == 0 {
		for _, v := range starterVerses {
			_, err := db.Exec(`
				INSERT INTO verse (id, text, reference, created_at)
				VALUES ($1, $2, $3, $4)
			`, uuid.NewString(), v[0], v[1], time.Now())
			if err != nil {
				return fmt.Errorf("failed to seed verses: %w", err)
			}
		}
	}

	return nil
}
