package browser

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	ini "gopkg.in/ini.v1"
)

// Locator discovers candidate history files across installed browser
// variants and profiles. Discovery runs once; the result is cached by the
// caller for the process lifetime.
type Locator struct {
	snap     *Snapshotter
	logger   *log.Logger
	chromium []string
	firefox  bool
}

// NewLocator creates a Locator for the given Chromium-family variants.
// A nil logger falls back to the stdlib default.
func NewLocator(chromium []string, firefox bool, snap *Snapshotter, logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.Default()
	}
	return &Locator{
		snap:     snap,
		logger:   logger,
		chromium: chromium,
		firefox:  firefox,
	}
}

// Discover scans the well-known per-OS install locations and returns a
// mapping of unique display label to profile. Finding nothing is not an
// error; the mapping is just empty.
func (l *Locator) Discover() map[string]Profile {
	profiles := make(map[string]Profile)

	roots := chromiumUserDataDirs()
	for _, family := range l.chromium {
		root, ok := roots[family]
		if !ok {
			l.logger.Printf("unknown chromium variant %q, skipping", family)
			continue
		}
		l.discoverChromium(profiles, family, root)
	}

	if l.firefox {
		l.discoverFirefox(profiles)
	}

	return profiles
}

// discoverChromium enumerates every profile subdirectory of a user-data
// root, not just Default. A profile is included only when its History file
// exists, is non-empty, and a row-count probe on its urls table comes back
// greater than zero.
func (l *Locator) discoverChromium(profiles map[string]Profile, family, root string) {
	entries, err := os.ReadDir(root)
	if err != nil {
		l.logger.Printf("%s: user data dir not found at %s", family, root)
		return
	}

	names := chromiumProfileNames(root)

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		historyPath := filepath.Join(root, e.Name(), "History")
		info, err := os.Stat(historyPath)
		if err != nil || info.Size() == 0 {
			continue
		}

		count, err := l.probeChromium(historyPath)
		if err != nil {
			l.logger.Printf("%s profile %q: probe failed: %v", family, e.Name(), err)
			continue
		}
		if count == 0 {
			l.logger.Printf("%s profile %q: empty history, skipping", family, e.Name())
			continue
		}

		label := family
		if e.Name() != "Default" {
			display := names[e.Name()]
			if display == "" {
				display = e.Name()
			}
			label = family + "-" + display
		}
		// Duplicate display names fall back to the directory name.
		if _, taken := profiles[label]; taken {
			label = family + "-" + e.Name()
		}

		profiles[label] = Profile{Label: label, Family: Chromium, Path: historyPath}
		l.logger.Printf("found %s history: %s (%d rows)", label, historyPath, count)
	}
}

// probeChromium snapshots the history file and counts its urls rows, to
// confirm the profile is actually query-able.
func (l *Locator) probeChromium(historyPath string) (int64, error) {
	tmp, err := l.snap.Snapshot(historyPath)
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp)

	db, err := openSnapshot(tmp)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM urls").Scan(&count); err != nil {
		return 0, fmt.Errorf("count urls: %w", err)
	}
	return count, nil
}

// chromiumProfileNames reads the user-facing profile names from the Local
// State file's info_cache. Missing or malformed files just mean no display
// names; the directory names are used instead.
func chromiumProfileNames(root string) map[string]string {
	data, err := os.ReadFile(filepath.Join(root, "Local State"))
	if err != nil {
		return nil
	}

	var state struct {
		Profile struct {
			InfoCache map[string]struct {
				Name string `json:"name"`
			} `json:"info_cache"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}

	names := make(map[string]string, len(state.Profile.InfoCache))
	for dir, info := range state.Profile.InfoCache {
		names[dir] = info.Name
	}
	return names
}

// discoverFirefox locates the first Firefox profile directory containing a
// non-empty places database, preferring profiles named "default", and stops
// at the first match.
func (l *Locator) discoverFirefox(profiles map[string]Profile) {
	root := firefoxRoot()

	candidates := firefoxProfileDirs(root)
	if len(candidates) == 0 {
		l.logger.Printf("Firefox: no profiles found under %s", root)
		return
	}

	for _, dir := range candidates {
		placesPath := filepath.Join(dir, "places.sqlite")
		info, err := os.Stat(placesPath)
		if err != nil || info.Size() == 0 {
			continue
		}

		profiles["Firefox"] = Profile{Label: "Firefox", Family: Firefox, Path: placesPath}
		l.logger.Printf("found Firefox history: %s", placesPath)
		return
	}

	l.logger.Printf("Firefox: no profile with a places database under %s", root)
}

// firefoxProfileDirs lists candidate profile directories, "default" names
// first. It reads profiles.ini when present and falls back to scanning the
// Profiles directory tree.
func firefoxProfileDirs(root string) []string {
	var dirs []string

	iniPath := filepath.Join(root, "profiles.ini")
	if data, err := ini.Load(iniPath); err == nil {
		for _, sec := range data.Sections() {
			if !strings.HasPrefix(sec.Name(), "Profile") {
				continue
			}
			p := sec.Key("Path").String()
			if p == "" {
				continue
			}
			if sec.Key("IsRelative").MustInt(1) == 1 {
				p = filepath.Join(root, p)
			}
			dirs = append(dirs, p)
		}
	}

	if len(dirs) == 0 {
		for _, base := range []string{filepath.Join(root, "Profiles"), root} {
			entries, err := os.ReadDir(base)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if e.IsDir() {
					dirs = append(dirs, filepath.Join(base, e.Name()))
				}
			}
			if len(dirs) > 0 {
				break
			}
		}
	}

	// Stable-partition: default profiles ahead of the rest.
	var preferred, others []string
	for _, d := range dirs {
		if strings.Contains(strings.ToLower(filepath.Base(d)), "default") {
			preferred = append(preferred, d)
		} else {
			others = append(others, d)
		}
	}
	return append(preferred, others...)
}
