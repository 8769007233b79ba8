package cli

import (
	"context"
	"fmt"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Execute implements the go-flags Commander interface for SearchCommand.
func (c *SearchCommand) Execute(args []string) error {
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

// executeWithStore runs the search against a provided store (for testing).
func (c *SearchCommand) executeWithStore(store storage.Store) error {
	term := c.Args.Term

	ctx := context.Background()
	results, err := store.Search(ctx, term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printEntriesJSON(results, int64(len(results)))
	}

	fmt.Printf("Search Results for %q\n\n", term)
	if len(results) == 0 {
		fmt.Printf("No results found for %q\n", term)
		return nil
	}

	resultWord := "results"
	if len(results) == 1 {
		resultWord = "result"
	}
	fmt.Printf("Found %d %s:\n\n", len(results), resultWord)
	printEntries(results)

	return nil
}
