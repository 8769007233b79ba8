package browser

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// chromiumEpochOffset is the number of seconds between the Chromium epoch
// (1601-01-01 UTC) and the Unix epoch. Chromium timestamps count
// microseconds since 1601; subtracting the offset after scaling to seconds
// stays within int64 range, where a time.Duration of the full span since
// 1601 would not.
const chromiumEpochOffset = 11644473600

// openSnapshot opens a history snapshot read-only.
func openSnapshot(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	return db, nil
}

// readChromium extracts visit records from a Chromium-family history
// snapshot. Rows with id above cursor are returned in ascending id order,
// normalized under the given browser label. The second return value is the
// maximum row id seen, for advancing the caller's cursor.
func readChromium(snapshotPath string, cursor int64, label string) ([]storage.Visit, int64, error) {
	db, err := openSnapshot(snapshotPath)
	if err != nil {
		return nil, cursor, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, url, title, visit_count, last_visit_time
		FROM urls
		WHERE id > ?
		ORDER BY id
	`, cursor)
	if err != nil {
		return nil, cursor, fmt.Errorf("query urls: %w", err)
	}
	defer rows.Close()

	maxID := cursor
	var visits []storage.Visit

	for rows.Next() {
		var (
			id         int64
			rawURL     string
			title      sql.NullString
			visitCount sql.NullInt64
			rawVisit   sql.NullInt64
		)
		if err := rows.Scan(&id, &rawURL, &title, &visitCount, &rawVisit); err != nil {
			return nil, maxID, fmt.Errorf("scan urls row: %w", err)
		}

		visits = append(visits, storage.Visit{
			RowID:      id,
			URL:        rawURL,
			Title:      normalizeTitle(title),
			VisitCount: visitCount.Int64,
			VisitedAt:  chromiumTime(rawVisit),
			RawVisit:   rawVisit.Int64,
			Browser:    label,
		})

		if id > maxID {
			maxID = id
		}
	}

	if err := rows.Err(); err != nil {
		return nil, maxID, fmt.Errorf("urls rows: %w", err)
	}

	return visits, maxID, nil
}

// chromiumTime converts a raw Chromium timestamp to UTC second precision.
// NULL or garbage values yield the current time instead of an error.
func chromiumTime(raw sql.NullInt64) time.Time {
	if !raw.Valid || raw.Int64 <= 0 {
		return time.Now().UTC().Truncate(time.Second)
	}
	return time.Unix(raw.Int64/1_000_000-chromiumEpochOffset, 0).UTC()
}

// normalizeTitle maps NULL or empty titles to the fixed placeholder.
func normalizeTitle(title sql.NullString) string {
	if !title.Valid || title.String == "" {
		return noTitle
	}
	return title.String
}
