package collector

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/aachraf94/Browser-History-Logger/internal/browser"
	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// OpenStoreFunc opens the persisted store for one merge operation. The
// returned closer releases the underlying database handle; the store is
// never held open across ticks.
type OpenStoreFunc func() (storage.Store, io.Closer, error)

// Collector runs the collection cycle: locate profiles, snapshot each
// source, read new rows above the per-profile cursor, and merge them into
// the store. It is single-threaded; one profile completes fully before the
// next is considered.
type Collector struct {
	locator   *browser.Locator
	snap      *browser.Snapshotter
	openStore OpenStoreFunc
	interval  time.Duration
	logger    *log.Logger
	out       io.Writer

	// profiles is discovered on the first tick and reused for the process
	// lifetime; re-discovery happens only while it stays empty.
	profiles map[string]browser.Profile

	// cursors maps profile label to the last merged source row id. Lives
	// in memory only: a restart re-scans full history and relies on the
	// store's uniqueness constraint to suppress re-inserts.
	cursors map[string]int64
}

// New creates a Collector. A nil logger falls back to the stdlib default
// and a nil out writes console lines to stdout.
func New(locator *browser.Locator, snap *browser.Snapshotter, openStore OpenStoreFunc, interval time.Duration, logger *log.Logger, out io.Writer) *Collector {
	if logger == nil {
		logger = log.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Collector{
		locator:   locator,
		snap:      snap,
		openStore: openStore,
		interval:  interval,
		logger:    logger,
		out:       out,
		profiles:  make(map[string]browser.Profile),
		cursors:   make(map[string]int64),
	}
}

// Cursor returns the current cursor for a profile label.
func (c *Collector) Cursor(label string) int64 {
	return c.cursors[label]
}

// CollectAll performs one full tick over every known profile and returns
// the total number of newly inserted rows. Only store-level failures
// propagate; per-profile source, snapshot, and schema failures degrade to
// zero records for that profile.
func (c *Collector) CollectAll(ctx context.Context) (int, error) {
	fmt.Fprintf(c.out, "\n[%s] Collecting browser histories...\n", time.Now().Format("2006-01-02 15:04:05"))

	if len(c.profiles) == 0 {
		c.profiles = c.locator.Discover()
	}

	store, closer, err := c.openStore()
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer closer.Close()
	defer store.Close()

	labels := make([]string, 0, len(c.profiles))
	for label := range c.profiles {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	total := 0
	for _, label := range labels {
		saved, err := c.collectProfile(ctx, store, c.profiles[label])
		if err != nil {
			return total, err
		}
		total += saved
	}

	if total > 0 {
		fmt.Fprintf(c.out, "Total new entries saved: %d\n", total)
	} else {
		fmt.Fprintln(c.out, "No new browsing activity detected")
	}

	return total, nil
}

// collectProfile snapshots one profile, reads records above its cursor,
// merges them, and advances the cursor. The returned error is non-nil only
// for store-level failures.
func (c *Collector) collectProfile(ctx context.Context, store storage.Store, p browser.Profile) (int, error) {
	cursor := c.cursors[p.Label]

	visits, maxID := c.readProfile(p, cursor)

	saved, err := store.SaveVisits(ctx, visits)
	if err != nil {
		// Store failure ends this tick's merge; the cursor stays put so
		// the rows are re-read on the next interval.
		return 0, fmt.Errorf("%s: save visits: %w", p.Label, err)
	}

	if maxID > cursor {
		c.cursors[p.Label] = maxID
	}

	switch {
	case saved > 0:
		fmt.Fprintf(c.out, "%s: %d new entries\n", p.Label, saved)
	case len(visits) > 0:
		fmt.Fprintf(c.out, "%s: already known\n", p.Label)
	case cursor > 0:
		fmt.Fprintf(c.out, "%s: no new entries since last check\n", p.Label)
	default:
		fmt.Fprintf(c.out, "%s: no history found\n", p.Label)
	}

	return saved, nil
}

// readProfile produces this tick's records for one profile: snapshot the
// live file, read rows above cursor, delete the snapshot. Every failure
// mode degrades to zero records.
func (c *Collector) readProfile(p browser.Profile, cursor int64) ([]storage.Visit, int64) {
	tmp, err := c.snap.Snapshot(p.Path)
	if err != nil {
		c.logger.Printf("could not access %s history (browser may be open): %v", p.Label, err)
		return nil, cursor
	}
	defer os.Remove(tmp)

	visits, maxID, err := browser.ReadVisits(p, tmp, cursor)
	if err != nil {
		c.logger.Printf("error reading %s history: %v", p.Label, err)
		return nil, cursor
	}

	return visits, maxID
}

// Run starts the continuous collection loop: one tick, then a fixed-
// interval sleep, until ctx is cancelled. Cancellation is honored at the
// sleep boundary, never mid-merge.
func (c *Collector) Run(ctx context.Context) error {
	for {
		if _, err := c.CollectAll(ctx); err != nil {
			// The tick is retried on the next interval.
			c.logger.Printf("collection tick failed: %v", err)
		}

		fmt.Fprintf(c.out, "\nNext check in %d seconds...\n", int(c.interval.Seconds()))

		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out, "\nMonitoring stopped")
			return nil
		case <-time.After(c.interval):
		}
	}
}
