package browser

import (
	"errors"
	"fmt"

	"github.com/aachraf94/Browser-History-Logger/internal/storage"
)

// Family identifies which history schema a profile uses.
type Family int

const (
	Chromium Family = iota
	Firefox
)

func (f Family) String() string {
	switch f {
	case Chromium:
		return "chromium"
	case Firefox:
		return "firefox"
	default:
		return "unknown"
	}
}

// Profile is one browser installation + user-profile combination acting as
// a distinct history source. Discovered once and treated as immutable for
// the process lifetime.
type Profile struct {
	Label  string // unique display label, e.g. "Chrome" or "Chrome-Work"
	Family Family
	Path   string // path to the live history database file
}

var (
	ErrUnsupportedFamily = errors.New("unsupported browser family")

	// ErrSnapshotUnavailable means both copy strategies failed; the caller
	// treats this as zero records this tick, not as a hard failure.
	ErrSnapshotUnavailable = errors.New("history snapshot unavailable")
)

// noTitle is the placeholder for NULL or empty page titles.
const noTitle = "No Title"

// ReadVisits dispatches to the format reader matching the profile's family.
// It returns the normalized records with source row id above cursor, in
// ascending row-id order, plus the maximum row id seen.
func ReadVisits(p Profile, snapshotPath string, cursor int64) ([]storage.Visit, int64, error) {
	switch p.Family {
	case Chromium:
		return readChromium(snapshotPath, cursor, p.Label)
	case Firefox:
		return readFirefox(snapshotPath, cursor, p.Label)
	default:
		return nil, cursor, fmt.Errorf("%w: %s", ErrUnsupportedFamily, p.Family)
	}
}
