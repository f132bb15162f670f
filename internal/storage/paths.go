package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir resolves the data directory in priority order:
// 1. FEYNREAD_DATA environment variable
// 2. $XDG_DATA_HOME/feynread
// 3. ~/.local/share/feynread
func DefaultDataDir() (string, error) {
	if d := os.Getenv("FEYNREAD_DATA"); d != "" {
		return d, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "feynread"), nil
}

// DBPath returns the SQLite database path inside dir.
func DBPath(dir string) string {
	return filepath.Join(dir, "feynread.db")
}

// LegacyFilePath returns the legacy JSON store path inside dir.
func LegacyFilePath(dir string) string {
	return filepath.Join(dir, "feynread.json")
}
