package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Execute implements the go-flags Commander interface for ViewCommand.
func (c *ViewCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

// executeWithStore runs view against a provided store (for testing).
func (c *ViewCommand) executeWithStore(store storage.Store) error {
	limit := c.Args.Limit
	if limit <= 0 {
		limit = 50
	}

	ctx := context.Background()
	entries, err := store.RecentEntries(ctx, limit)
	if err != nil {
		return fmt.Errorf("recent entries: %w", err)
	}

	total, err := store.CountEntries(ctx)
	if err != nil {
		return fmt.Errorf("count entries: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printEntriesJSON(entries, total)
	}

	fmt.Printf("Recent Browsing History (last %d entries)\n\n", limit)
	printEntries(entries)
	fmt.Printf("\nTotal entries in database: %d\n", total)
	return nil
}

// printEntries prints history entries in the shared console layout.
func printEntries(entries []storage.HistoryEntry) {
	for _, e := range entries {
		fmt.Printf("[%s] [%s]\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Browser)
		fmt.Printf("  Title: %s\n", e.Title)
		fmt.Printf("  URL: %s\n", e.URL)
	}
}

type jsonEntry struct {
	ID         int64  `json:"id"`
	Timestamp  string `json:"timestamp"`
	URL        string `json:"url"`
	Title      string `json:"title"`
	VisitCount int64  `json:"visit_count"`
	Browser    string `json:"browser"`
}

type jsonEntryList struct {
	Count   int         `json:"count"`
	Total   int64       `json:"total"`
	Entries []jsonEntry `json:"entries"`
}

func printEntriesJSON(entries []storage.HistoryEntry, total int64) error {
	out := jsonEntryList{
		Count:   len(entries),
		Total:   total,
		Entries: make([]jsonEntry, len(entries)),
	}
	for i, e := range entries {
		out.Entries[i] = jsonEntry{
			ID:         e.ID,
			Timestamp:  e.Timestamp.UTC().Format(time.RFC3339),
			URL:        e.URL,
			Title:      e.Title,
			VisitCount: e.VisitCount,
			Browser:    e.Browser,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
