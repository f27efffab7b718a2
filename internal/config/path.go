// Package config locates EcoScan's files on disk.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user configuration and state directories.
const AppName = "ecoscan"

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return os.ExpandEnv(path)
}

// ConfigDir returns the directory searched for config.yaml, honouring
// XDG_CONFIG_HOME.
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the directory for logs and recordings, honouring
// XDG_STATE_HOME.
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// DefaultLogFile is where the dashboard writes its log while it owns the
// terminal.
func DefaultLogFile() string {
	dir, err := StateDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName+".log")
	}
	return filepath.Join(dir, AppName+".log")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, AppName), nil
}
