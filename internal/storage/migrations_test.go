package storage

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrationRunner_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	runner := NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	for _, table := range []string{"browsing_history", "daily_summary", "schema_migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	var version int
	require.NoError(t, db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestMigrationRunner_Idempotent(t *testing.T) {
	db := openTestDB(t)

	runner := NewMigrationRunner(db)
	require.NoError(t, runner.Run())
	require.NoError(t, runner.Run())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count, "each migration recorded exactly once")
}

func TestSchema_UniqueConstraints(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, NewMigrationRunner(db).Run())

	const insertHistory = `
		INSERT OR IGNORE INTO browsing_history (timestamp, url, title, visit_count, browser)
		VALUES ('2024-03-01 12:00:00', 'https://example.com', 'A', 1, 'Chrome')
	`
	_, err := db.Exec(insertHistory)
	require.NoError(t, err)
	res, err := db.Exec(insertHistory)
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "duplicate dedup key should be ignored")

	var total int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM browsing_history").Scan(&total))
	assert.Equal(t, 1, total)
}
