package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the catalog schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id            INTEGER PRIMARY KEY,
		title         TEXT NOT NULL,
		subject       TEXT NOT NULL
		              CHECK(subject IN ('國文','英文','數學','自然','社會','藝能')),
		level         TEXT NOT NULL
		              CHECK(level IN ('基礎','中級','進階')),
		duration      TEXT NOT NULL,
		author        TEXT NOT NULL DEFAULT '',
		rating        REAL NOT NULL DEFAULT 0 CHECK(rating >= 0 AND rating <= 5),
		review_count  INTEGER NOT NULL DEFAULT 0 CHECK(review_count >= 0),
		thumbnail_url TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_subject ON plans(subject)`,
}
