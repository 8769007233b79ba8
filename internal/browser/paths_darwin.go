//go:build darwin

package browser

import (
	"os"
	"path/filepath"
)

// chromiumUserDataDirs maps each supported Chromium-family product to its
// user-data directory on macOS.
func chromiumUserDataDirs() map[string]string {
	h, _ := os.UserHomeDir()
	appSupport := filepath.Join(h, "Library", "Application Support")
	return map[string]string{
		"Chrome": filepath.Join(appSupport, "Google", "Chrome"),
		"Edge":   filepath.Join(appSupport, "Microsoft Edge"),
		"Brave":  filepath.Join(appSupport, "BraveSoftware", "Brave-Browser"),
	}
}

// firefoxRoot returns the Firefox configuration root on macOS.
func firefoxRoot() string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, "Library", "Application Support", "Firefox")
}
