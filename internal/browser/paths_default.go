//go:build !windows && !darwin

package browser

import (
	"os"
	"path/filepath"
)

// chromiumUserDataDirs maps each supported Chromium-family product to its
// user-data directory on Linux and other Unix-likes.
func chromiumUserDataDirs() map[string]string {
	h, _ := os.UserHomeDir()
	cfg := os.Getenv("XDG_CONFIG_HOME")
	if cfg == "" {
		cfg = filepath.Join(h, ".config")
	}
	return map[string]string{
		"Chrome": filepath.Join(cfg, "google-chrome"),
		"Edge":   filepath.Join(cfg, "microsoft-edge"),
		"Brave":  filepath.Join(cfg, "BraveSoftware", "Brave-Browser"),
	}
}

// firefoxRoot returns the Firefox configuration root on Linux.
func firefoxRoot() string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, ".mozilla", "firefox")
}
