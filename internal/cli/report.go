package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Execute implements the go-flags Commander interface for ReportCommand.
func (c *ReportCommand) Execute(args []string) error {
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

// executeWithStore runs the report against a provided store (for testing).
func (c *ReportCommand) executeWithStore(store storage.Store) error {
	today := time.Now().Format(storage.DateLayout)

	report, err := store.Report(context.Background(), today)
	if err != nil {
		return fmt.Errorf("daily report: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printReportJSON(report)
	}

	fmt.Printf("Daily Browsing Report - %s\n", report.Date)

	if len(report.TopSites) == 0 {
		fmt.Println("\nNo browsing activity recorded today")
		return nil
	}

	fmt.Println("\nTop Sites Visited Today:")
	for _, site := range report.TopSites {
		fmt.Printf("  %s - %d visits [%s]\n", site.Domain, site.Visits, site.Browser)
	}

	if len(report.ByBrowser) > 0 {
		fmt.Println("\nBrowser Usage Today:")
		for _, b := range report.ByBrowser {
			fmt.Printf("  %s: %d visits\n", b.Browser, b.Visits)
		}
	}

	return nil
}

type jsonDomainVisits struct {
	Domain  string `json:"domain"`
	Visits  int64  `json:"visits"`
	Browser string `json:"browser,omitempty"`
}

type jsonBrowserVisits struct {
	Browser string `json:"browser"`
	Visits  int64  `json:"visits"`
}

type jsonReport struct {
	Date      string              `json:"date"`
	TopSites  []jsonDomainVisits  `json:"top_sites"`
	ByBrowser []jsonBrowserVisits `json:"by_browser"`
}

func printReportJSON(report *storage.DailyReport) error {
	out := jsonReport{
		Date:      report.Date,
		TopSites:  make([]jsonDomainVisits, len(report.TopSites)),
		ByBrowser: make([]jsonBrowserVisits, len(report.ByBrowser)),
	}
	for i, site := range report.TopSites {
		out.TopSites[i] = jsonDomainVisits{Domain: site.Domain, Visits: site.Visits, Browser: site.Browser}
	}
	for i, b := range report.ByBrowser {
		out.ByBrowser[i] = jsonBrowserVisits{Browser: b.Browser, Visits: b.Visits}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
