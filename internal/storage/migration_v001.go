package storage

import "database/sql"

// migrateV001 creates the initial histlog schema: the browsing_history and
// daily_summary tables plus their indexes. Every statement uses IF NOT
// EXISTS for idempotency.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS browsing_history (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       TEXT NOT NULL,
			url             TEXT NOT NULL,
			title           TEXT,
			visit_count     INTEGER DEFAULT 1,
			browser         TEXT NOT NULL,
			last_visit_time TEXT,
			UNIQUE(url, timestamp, browser)
		)`,

		`CREATE TABLE IF NOT EXISTS daily_summary (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			date        TEXT NOT NULL,
			domain      TEXT NOT NULL,
			visit_count INTEGER DEFAULT 1,
			browser     TEXT,
			UNIQUE(date, domain, browser)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_timestamp  ON browsing_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_url        ON browsing_history(url)`,
		`CREATE INDEX IF NOT EXISTS idx_browser    ON browsing_history(browser)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_date ON daily_summary(date)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
