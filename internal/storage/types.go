package storage

import "time"

// TimeLayout is the storage format for visit timestamps: UTC, second
// precision, lexicographically sortable.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the storage format for daily_summary calendar dates.
const DateLayout = "2006-01-02"

// Visit is a normalized visit record produced by a format reader,
// ready to be merged into the store.
type Visit struct {
	RowID      int64 // source row id, used only to advance the cursor
	URL        string
	Title      string
	VisitCount int64
	VisitedAt  time.Time // UTC, second precision
	RawVisit   int64     // raw last-visit value as stored by the browser
	Browser    string    // profile label, e.g. "Chrome" or "Chrome-Work"
}

// HistoryEntry is a persisted browsing_history row.
type HistoryEntry struct {
	ID         int64
	Timestamp  time.Time
	URL        string
	Title      string
	VisitCount int64
	Browser    string
	RawVisit   string
}

// DomainVisits pairs a domain with an aggregated visit count.
type DomainVisits struct {
	Domain  string
	Browser string
	Visits  int64
}

// BrowserVisits pairs a browser label with an aggregated visit count.
type BrowserVisits struct {
	Browser string
	Visits  int64
}

// DailyReport holds one day's aggregates from daily_summary.
type DailyReport struct {
	Date      string
	TopSites  []DomainVisits
	ByBrowser []BrowserVisits
}

// Stats holds overall statistics across the whole store.
type Stats struct {
	TotalEntries  int64
	UniqueURLs    int64
	OldestEntry   time.Time
	NewestEntry   time.Time
	ByBrowser     []BrowserVisits
	TopDomains    []DomainVisits
	MostActiveDay string
	MostActiveN   int64
}
