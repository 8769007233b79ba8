package browser

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// readFirefox extracts visit records from a Firefox places snapshot. Rows
// with id above cursor are returned in ascending id order. The second
// return value is the maximum row id seen, for advancing the caller's
// cursor.
func readFirefox(snapshotPath string, cursor int64, label string) ([]storage.Visit, int64, error) {
	db, err := openSnapshot(snapshotPath)
	if err != nil {
		return nil, cursor, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, url, title, visit_count, last_visit_date
		FROM moz_places
		WHERE id > ?
		ORDER BY id
	`, cursor)
	if err != nil {
		return nil, cursor, fmt.Errorf("query moz_places: %w", err)
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
			return nil, maxID, fmt.Errorf("scan moz_places row: %w", err)
		}

		visits = append(visits, storage.Visit{
			RowID:      id,
			URL:        rawURL,
			Title:      normalizeTitle(title),
			VisitCount: visitCount.Int64,
			VisitedAt:  firefoxTime(rawVisit),
			RawVisit:   rawVisit.Int64,
			Browser:    label,
		})

		if id > maxID {
			maxID = id
		}
	}

	if err := rows.Err(); err != nil {
		return nil, maxID, fmt.Errorf("moz_places rows: %w", err)
	}

	return visits, maxID, nil
}

// firefoxTime converts a raw Firefox last-visit value (microseconds since
// the Unix epoch) to UTC second precision. NULL or garbage values yield
// the current time instead of an error.
func firefoxTime(raw sql.NullInt64) time.Time {
	if !raw.Valid || raw.Int64 <= 0 {
		return time.Now().UTC().Truncate(time.Second)
	}
	return time.Unix(raw.Int64/1_000_000, 0).UTC()
}
