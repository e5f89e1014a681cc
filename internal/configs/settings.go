package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir returns the Holecard home directory (~/.holecard), which holds
// the config file, the deck registry, the session sidecar, the audit log,
// and the default deck file.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".holecard"), nil
}

// EnsureDir creates the Holecard home directory with owner-only permissions.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
