//go:build windows

package browser

import (
	"os"
	"path/filepath"
)

// chromiumUserDataDirs maps each supported Chromium-family product to its
// user-data directory on Windows.
func chromiumUserDataDirs() map[string]string {
	local := os.Getenv("LOCALAPPDATA")
	return map[string]string{
		"Chrome": filepath.Join(local, "Google", "Chrome", "User Data"),
		"Edge":   filepath.Join(local, "Microsoft", "Edge", "User Data"),
		"Brave":  filepath.Join(local, "BraveSoftware", "Brave-Browser", "User Data"),
	}
}

// firefoxRoot returns the Firefox configuration root on Windows, the
// directory holding profiles.ini and the Profiles tree.
func firefoxRoot() string {
	appData := os.Getenv("APPDATA")
	return filepath.Join(appData, "Mozilla", "Firefox")
}
