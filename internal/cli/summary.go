package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Execute implements the go-flags Commander interface for SummaryCommand.
func (c *SummaryCommand) Execute(args []string) error {
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

// executeWithStore runs summary against a provided store (for testing).
func (c *SummaryCommand) executeWithStore(store storage.Store) error {
	stats, err := store.GetStats(context.Background())
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printStatsJSON(stats)
	}

	fmt.Println("Overall Browsing Summary")
	fmt.Println()
	fmt.Printf("Total History Entries: %d\n", stats.TotalEntries)
	fmt.Printf("Unique URLs:           %d\n", stats.UniqueURLs)

	if stats.TotalEntries > 0 {
		fmt.Printf("Date Range:            %s to %s\n",
			stats.OldestEntry.Format(storage.DateLayout),
			stats.NewestEntry.Format(storage.DateLayout))
	}

	if len(stats.ByBrowser) > 0 {
		fmt.Println("\nBrowser Usage:")
		for _, b := range stats.ByBrowser {
			pct := float64(b.Visits) / float64(stats.TotalEntries) * 100
			fmt.Printf("  %s: %d entries (%.1f%%)\n", b.Browser, b.Visits, pct)
		}
	}

	if len(stats.TopDomains) > 0 {
		fmt.Println("\nTop 10 All-Time Websites:")
		for i, d := range stats.TopDomains {
			fmt.Printf("  %2d. %s - %d visits\n", i+1, d.Domain, d.Visits)
		}
	}

	if stats.MostActiveDay != "" {
		fmt.Println("\nMost Active Day:")
		fmt.Printf("  %s - %d visits\n", stats.MostActiveDay, stats.MostActiveN)
	}

	return nil
}

type jsonStats struct {
	TotalEntries  int64               `json:"total_entries"`
	UniqueURLs    int64               `json:"unique_urls"`
	OldestEntry   string              `json:"oldest_entry,omitempty"`
	NewestEntry   string              `json:"newest_entry,omitempty"`
	ByBrowser     []jsonBrowserVisits `json:"by_browser"`
	TopDomains    []jsonDomainVisits  `json:"top_domains"`
	MostActiveDay string              `json:"most_active_day,omitempty"`
	MostActiveN   int64               `json:"most_active_visits,omitempty"`
}

func printStatsJSON(stats *storage.Stats) error {
	out := jsonStats{
		TotalEntries:  stats.TotalEntries,
		UniqueURLs:    stats.UniqueURLs,
		ByBrowser:     make([]jsonBrowserVisits, len(stats.ByBrowser)),
		TopDomains:    make([]jsonDomainVisits, len(stats.TopDomains)),
		MostActiveDay: stats.MostActiveDay,
		MostActiveN:   stats.MostActiveN,
	}

	if stats.TotalEntries > 0 {
		out.OldestEntry = stats.OldestEntry.Format(storage.DateLayout)
		out.NewestEntry = stats.NewestEntry.Format(storage.DateLayout)
	}
	for i, b := range stats.ByBrowser {
		out.ByBrowser[i] = jsonBrowserVisits{Browser: b.Browser, Visits: b.Visits}
	}
	for i, d := range stats.TopDomains {
		out.TopDomains[i] = jsonDomainVisits{Domain: d.Domain, Visits: d.Visits}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
