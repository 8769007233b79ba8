package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"time"
)

// Store defines the interface for history data operations. SaveVisits is
// the only mutating entry point; everything else is read-only.
type Store interface {
	SaveVisits(ctx context.Context, visits []Visit) (int, error)
	RecentEntries(ctx context.Context, limit int) ([]HistoryEntry, error)
	CountEntries(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string) ([]HistoryEntry, error)
	Report(ctx context.Context, date string) (*DailyReport, error)
	TopSites(ctx context.Context, days int) ([]DomainVisits, error)
	GetStats(ctx context.Context) (*Stats, error)
	Close() error
}

// searchLimit caps the number of rows returned by Search.
const searchLimit = 100

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	insertEntry   *sql.Stmt
	upsertSummary *sql.Stmt
}

// NewSQLiteStore creates a new SQLiteStore from an already-opened and
// migrated database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertEntry, err = s.db.Prepare(`
		INSERT OR IGNORE INTO browsing_history
			(timestamp, url, title, visit_count, browser, last_visit_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.upsertSummary, err = s.db.Prepare(`
		INSERT INTO daily_summary (date, domain, visit_count, browser)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(date, domain, browser)
		DO UPDATE SET visit_count = visit_count + 1
	`)
	if err != nil {
		return err
	}

	return nil
}

// extractDomain pulls the hostname from a URL string. Unparseable URLs
// fall back to the raw string so the aggregate never loses a visit.
func extractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

// parseTimestamp tries the storage layout plus a few common SQLite formats.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		TimeLayout,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// SaveVisits merges normalized visit records into the store and returns the
// number of rows actually inserted. Duplicate (url, timestamp, browser)
// keys are ignored, not errors. Only freshly inserted rows feed the daily
// aggregate, keyed by today's calendar date at insert time. All writes for
// one call share a single transaction; a per-row failure is logged and that
// row skipped without abandoning the rest of the batch.
func (s *SQLiteStore) SaveVisits(ctx context.Context, visits []Visit) (int, error) {
	if len(visits) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	insert := tx.StmtContext(ctx, s.insertEntry)
	upsert := tx.StmtContext(ctx, s.upsertSummary)

	today := time.Now().Format(DateLayout)
	saved := 0

	for _, v := range visits {
		ts := v.VisitedAt.UTC().Format(TimeLayout)

		res, err := insert.ExecContext(ctx,
			ts, v.URL, v.Title, v.VisitCount, v.Browser,
			fmt.Sprintf("%d", v.RawVisit),
		)
		if err != nil {
			log.Printf("error saving entry %q: %v", v.URL, err)
			continue
		}

		n, err := res.RowsAffected()
		if err != nil || n == 0 {
			continue // already known
		}
		saved++

		domain := extractDomain(v.URL)
		if _, err := upsert.ExecContext(ctx, today, domain, v.Browser); err != nil {
			log.Printf("error updating daily summary for %q: %v", domain, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit visits: %w", err)
	}

	return saved, nil
}

// RecentEntries returns the most recent history rows, newest first.
func (s *SQLiteStore) RecentEntries(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	return s.scanEntries(ctx, `
		SELECT id, timestamp, url, title, visit_count, browser, last_visit_time
		FROM browsing_history
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
}

// CountEntries returns the total number of persisted history rows.
func (s *SQLiteStore) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM browsing_history").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Search returns rows whose url or title contains term, newest first,
// capped at searchLimit.
func (s *SQLiteStore) Search(ctx context.Context, term string) ([]HistoryEntry, error) {
	pattern := "%" + term + "%"
	return s.scanEntries(ctx, `
		SELECT id, timestamp, url, title, visit_count, browser, last_visit_time
		FROM browsing_history
		WHERE url LIKE ? OR title LIKE ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, pattern, pattern, searchLimit)
}

// scanEntries executes a query and scans results into HistoryEntry slices.
func (s *SQLiteStore) scanEntries(ctx context.Context, query string, args ...interface{}) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var tsStr string
		var title, rawVisit sql.NullString
		if err := rows.Scan(
			&e.ID, &tsStr, &e.URL, &title, &e.VisitCount, &e.Browser, &rawVisit,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Timestamp, _ = parseTimestamp(tsStr)
		e.Title = title.String
		e.RawVisit = rawVisit.String
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Return empty slice rather than nil
	if entries == nil {
		entries = []HistoryEntry{}
	}

	return entries, nil
}

// Report returns one day's aggregates: top sites (limit 20) and the
// per-browser breakdown, both from daily_summary.
func (s *SQLiteStore) Report(ctx context.Context, date string) (*DailyReport, error) {
	report := &DailyReport{Date: date}

	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, SUM(visit_count) AS total_visits, browser
		FROM daily_summary
		WHERE date = ?
		GROUP BY domain, browser
		ORDER BY total_visits DESC
		LIMIT 20
	`, date)
	if err != nil {
		return nil, fmt.Errorf("daily top sites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dv DomainVisits
		var browser sql.NullString
		if err := rows.Scan(&dv.Domain, &dv.Visits, &browser); err != nil {
			return nil, err
		}
		dv.Browser = browser.String
		report.TopSites = append(report.TopSites, dv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	browserRows, err := s.db.QueryContext(ctx, `
		SELECT browser, SUM(visit_count) AS total
		FROM daily_summary
		WHERE date = ?
		GROUP BY browser
		ORDER BY total DESC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("daily browser usage: %w", err)
	}
	defer browserRows.Close()

	for browserRows.Next() {
		var bv BrowserVisits
		var browser sql.NullString
		if err := browserRows.Scan(&browser, &bv.Visits); err != nil {
			return nil, err
		}
		bv.Browser = browser.String
		report.ByBrowser = append(report.ByBrowser, bv)
	}

	return report, browserRows.Err()
}

// TopSites returns the top domains (limit 30) by summed visit count over
// the last N days of daily_summary rows.
func (s *SQLiteStore) TopSites(ctx context.Context, days int) ([]DomainVisits, error) {
	if days <= 0 {
		days = 7
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, SUM(visit_count) AS total_visits
		FROM daily_summary
		WHERE date >= date('now', ?)
		GROUP BY domain
		ORDER BY total_visits DESC
		LIMIT 30
	`, fmt.Sprintf("-%d days", days))
	if err != nil {
		return nil, fmt.Errorf("top sites: %w", err)
	}
	defer rows.Close()

	var sites []DomainVisits
	for rows.Next() {
		var dv DomainVisits
		if err := rows.Scan(&dv.Domain, &dv.Visits); err != nil {
			return nil, err
		}
		sites = append(sites, dv)
	}

	return sites, rows.Err()
}

// GetStats returns aggregate statistics about the whole store.
func (s *SQLiteStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM browsing_history").Scan(&stats.TotalEntries)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	err = s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT url) FROM browsing_history").Scan(&stats.UniqueURLs)
	if err != nil {
		return nil, fmt.Errorf("count unique urls: %w", err)
	}

	// Date range (handle empty store)
	if stats.TotalEntries > 0 {
		var oldestStr, newestStr string
		err = s.db.QueryRowContext(ctx,
			"SELECT MIN(timestamp), MAX(timestamp) FROM browsing_history",
		).Scan(&oldestStr, &newestStr)
		if err != nil {
			return nil, fmt.Errorf("entry time range: %w", err)
		}
		stats.OldestEntry, _ = parseTimestamp(oldestStr)
		stats.NewestEntry, _ = parseTimestamp(newestStr)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT browser, COUNT(*) AS cnt
		FROM browsing_history
		GROUP BY browser
		ORDER BY cnt DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("browser breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bv BrowserVisits
		if err := rows.Scan(&bv.Browser, &bv.Visits); err != nil {
			return nil, err
		}
		stats.ByBrowser = append(stats.ByBrowser, bv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	domainRows, err := s.db.QueryContext(ctx, `
		SELECT domain, SUM(visit_count) AS total_visits
		FROM daily_summary
		GROUP BY domain
		ORDER BY total_visits DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("top domains: %w", err)
	}
	defer domainRows.Close()

	for domainRows.Next() {
		var dv DomainVisits
		if err := domainRows.Scan(&dv.Domain, &dv.Visits); err != nil {
			return nil, err
		}
		stats.TopDomains = append(stats.TopDomains, dv)
	}
	if err := domainRows.Err(); err != nil {
		return nil, err
	}

	// Most active day; ErrNoRows just means an empty summary table.
	err = s.db.QueryRowContext(ctx, `
		SELECT date, SUM(visit_count) AS total
		FROM daily_summary
		GROUP BY date
		ORDER BY total DESC
		LIMIT 1
	`).Scan(&stats.MostActiveDay, &stats.MostActiveN)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("most active day: %w", err)
	}

	return stats, nil
}

// Close releases all prepared statements. The underlying *sql.DB is NOT
// closed; that is the caller's responsibility.
func (s *SQLiteStore) Close() error {
	stmts := []*sql.Stmt{s.insertEntry, s.upsertSummary}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
