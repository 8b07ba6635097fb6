package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// FleurDir returns the fleur config directory path
// ~/.config/fleur/
func FleurDir() string {
	return filepath.Join(homeDir, ".config", "fleur")
}

// ConfigPath returns the config.json file path
// ~/.config/fleur/config.json
func ConfigPath() string {
	return filepath.Join(FleurDir(), "config.json")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
