package cli

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// setupTestStore returns a migrated in-memory store.
func setupTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.NewMigrationRunner(db).Run())

	store, err := storage.NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

// seedVisits merges a fixed batch of visits through the normal write path
// so that daily rollups are populated the same way collection populates them.
func seedVisits(t *testing.T, store *storage.SQLiteStore) {
	t.Helper()
	now := time.Now().UTC()

	visits := []struct {
		url, title, browser string
		at                  time.Time
	}{
		{"https://www.youtube.com/watch?v=abc", "Funny Cats", "Chrome", now.Add(-1 * time.Hour)},
		{"https://www.youtube.com/watch?v=def", "More Cats", "Chrome", now.Add(-2 * time.Hour)},
		{"https://github.com/golang/go", "The Go Programming Language", "Firefox", now.Add(-3 * time.Hour)},
		{"https://news.ycombinator.com/", "Hacker News", "Brave", now.Add(-4 * time.Hour)},
		{"https://pkg.go.dev/database/sql", "sql package", "Firefox", now.Add(-5 * time.Hour)},
	}

	batch := make([]storage.Visit, len(visits))
	for i, v := range visits {
		batch[i] = storage.Visit{
			RowID:      int64(i + 1),
			URL:        v.url,
			Title:      v.title,
			VisitCount: 1,
			VisitedAt:  v.at,
			RawVisit:   0,
			Browser:    v.browser,
		}
	}

	saved, err := store.SaveVisits(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, len(batch), saved)
}
