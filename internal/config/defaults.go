package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.config/histlog",
			SQLiteFile: "browsing_history.db",
		},
		Collection: CollectionConfig{
			IntervalSeconds: 300,
		},
		Browsers: BrowsersConfig{
			Chromium: []string{"Chrome", "Edge", "Brave"},
			Firefox:  true,
		},
		Logging: LoggingConfig{
			Verbose: false,
		},
	}
}
