package browser

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// historyRow is one source row for a fixture database. A nil lastVisit
// becomes NULL.
type historyRow struct {
	id        int64
	url       string
	title     *string
	visits    int64
	lastVisit *int64
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

// createChromiumFixture writes a minimal Chromium history database at path.
func createChromiumFixture(t *testing.T, path string, rows []historyRow) {
	t.Helper()
	createFixture(t, path, `
		CREATE TABLE urls (
			id INTEGER PRIMARY KEY,
			url TEXT,
			title TEXT,
			visit_count INTEGER,
			last_visit_time INTEGER
		)`,
		"INSERT INTO urls (id, url, title, visit_count, last_visit_time) VALUES (?, ?, ?, ?, ?)",
		rows)
}

// createFirefoxFixture writes a minimal Firefox places database at path.
func createFirefoxFixture(t *testing.T, path string, rows []historyRow) {
	t.Helper()
	createFixture(t, path, `
		CREATE TABLE moz_places (
			id INTEGER PRIMARY KEY,
			url TEXT,
			title TEXT,
			visit_count INTEGER,
			last_visit_date INTEGER
		)`,
		"INSERT INTO moz_places (id, url, title, visit_count, last_visit_date) VALUES (?, ?, ?, ?, ?)",
		rows)
}

func createFixture(t *testing.T, path, schema, insertSQL string, rows []historyRow) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(schema)
	require.NoError(t, err)

	for _, r := range rows {
		_, err := db.Exec(insertSQL, r.id, r.url, r.title, r.visits, r.lastVisit)
		require.NoError(t, err)
	}
}
