package main

import (
	"os"

	"github.com/jonathan/applicant-scorer/internal/config"
)

var settingsPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to JSON settings file with flag defaults")
}

// loadSettings loads the optional settings file. Flags always win; settings
// fill gaps; the zero Config means "no file given".
func loadSettings() (config.Config, error) {
	if settingsPath == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(settingsPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// databaseURL resolves the connection string: environment first, then the
// settings file.
func databaseURL(settings config.Config) string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return settings.DatabaseURL
}
