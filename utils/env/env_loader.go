// Package env provides utilities for loading environment variables from .env files
package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// HomeVar overrides the oracle home directory.
	HomeVar = "HYPERDRIVE_ORACLE_HOME"

	// maxParentSearch bounds how far up the tree .env is looked for.
	maxParentSearch = 5
)

var (
	// IsLoaded tracks whether a .env file has been loaded
	IsLoaded bool
)

// LoadEnv loads environment variables from the nearest .env file, searching
// the current directory and up to five parents. Variables already set in the
// process environment win. Returns the path loaded, or "" when none exists.
func LoadEnv() (string, error) {
	if IsLoaded {
		return "", nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for i := 0; i <= maxParentSearch; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return "", err
			}
			IsLoaded = true
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// LoadEnvWithPath loads environment variables from a specific .env file path
func LoadEnvWithPath(filePath string) error {
	if err := godotenv.Load(filePath); err != nil {
		return err
	}
	IsLoaded = true
	return nil
}

// DefaultHome returns $HYPERDRIVE_ORACLE_HOME, falling back to
// ~/.hyperdrive-oracle.
func DefaultHome() string {
	if home := strings.TrimSpace(os.Getenv(HomeVar)); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".hyperdrive-oracle"
	}
	return filepath.Join(userHome, ".hyperdrive-oracle")
}
