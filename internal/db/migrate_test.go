package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countPlans(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&n))
	return n
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='plans'`).Scan(&name))
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_plans_subject'`).Scan(&name))
}

func TestOpenDB_SeedsCatalog(t *testing.T) {
	db := openTestDB(t)
	assert.Equal(t, 6, countPlans(t, db))
}

func TestSeed_Twice(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(context.Background(), NewSQLiteUnitOfWork(db)))
	assert.Equal(t, 6, countPlans(t, db))
}

func TestSchema_RejectsUnknownSubject(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO plans (id, title, subject, level, duration) VALUES (99, 'x', 'Physics', '基礎', '4週')`)
	assert.Error(t, err)
}

func TestSchema_RejectsRatingOutOfRange(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO plans (id, title, subject, level, duration, rating) VALUES (99, 'x', '數學', '基礎', '4週', 5.5)`)
	assert.Error(t, err)
}

func TestOpenDB_File(t *testing.T) {
	path := t.TempDir() + "/sub/catalog.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, 6, countPlans(t, db))
}
