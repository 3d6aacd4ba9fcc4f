package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryDSN selects a private in-memory catalog.
const MemoryDSN = ":memory:"

// OpenDB opens the catalog database, applies the schema and seeds the
// built-in plans. With MemoryDSN the pool is pinned to one connection so
// every query sees the same in-memory database.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryDSN {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if err := Seed(context.Background(), NewSQLiteUnitOfWork(db)); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	return db, nil
}
