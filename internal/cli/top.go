package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Execute implements the go-flags Commander interface for TopCommand.
func (c *TopCommand) Execute(args []string) error {
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

// executeWithStore runs top against a provided store (for testing).
func (c *TopCommand) executeWithStore(store storage.Store) error {
	days := c.Args.Days
	if days <= 0 {
		days = 7
	}

	sites, err := store.TopSites(context.Background(), days)
	if err != nil {
		return fmt.Errorf("top sites: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := make([]jsonDomainVisits, len(sites))
		for i, site := range sites {
			out[i] = jsonDomainVisits{Domain: site.Domain, Visits: site.Visits}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Top Visited Sites (last %d days)\n\n", days)

	if len(sites) == 0 {
		fmt.Println("No data available")
		return nil
	}

	for i, site := range sites {
		fmt.Printf("%2d. %s - %d visits\n", i+1, site.Domain, site.Visits)
	}

	return nil
}
