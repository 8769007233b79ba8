package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aachraf94/Browser-History-Logger/internal/browser"
	"github.com/aachraf94/Browser-History-Logger/internal/collector"
	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Execute implements the go-flags Commander interface for CollectCommand.
func (c *CollectCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	if c.Interval > 0 {
		cfg.Collection.IntervalSeconds = c.Interval
	}
	interval := time.Duration(cfg.Collection.IntervalSeconds) * time.Second

	logger := log.New(io.Discard, "", log.LstdFlags)
	if (c.globals != nil && c.globals.Verbose) || cfg.Logging.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	snap := browser.NewSnapshotter(logger)
	locator := browser.NewLocator(cfg.Browsers.Chromium, cfg.Browsers.Firefox, snap, logger)

	openStoreFn := func() (storage.Store, io.Closer, error) {
		store, db, err := openStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, db, nil
	}

	coll := collector.New(locator, snap, openStoreFn, interval, logger, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Once {
		_, err := coll.CollectAll(ctx)
		return err
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}
	c.printBanner(cfg.Browsers.Chromium, cfg.Browsers.Firefox, cfg.Collection.IntervalSeconds, dbPath)
	return coll.Run(ctx)
}

func (c *CollectCommand) printBanner(chromium []string, firefox bool, intervalSeconds int, dbPath string) {
	browsers := append([]string{}, chromium...)
	if firefox {
		browsers = append(browsers, "Firefox")
	}

	fmt.Println("Browser History Logger - Non-Intrusive Monitoring")
	fmt.Printf("Version:        %s\n", c.version)
	fmt.Printf("Monitoring:     %s\n", strings.Join(browsers, ", "))
	fmt.Printf("Database:       %s\n", dbPath)
	fmt.Printf("Check interval: %d seconds (%d minutes)\n", intervalSeconds, intervalSeconds/60)
	fmt.Println()
	fmt.Println("Commands: view [limit] | report | top [days] | search <term> | summary | help")
	fmt.Println("Press Ctrl+C to stop monitoring")
}
