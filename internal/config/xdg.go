// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "tapwords"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultLexiconDir returns the directory where relative lexicon names are looked up.
func DefaultLexiconDir() string {
	return filepath.Join(XDGConfigHome(), appName, "lexicons")
}

// DefaultLogPath returns the suggested diagnostics log location.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appName, "tapwords.log")
}

// ResolveLexiconPath turns a bare lexicon name into a path under
// DefaultLexiconDir. Paths containing a separator are returned unchanged.
func ResolveLexiconPath(name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	return filepath.Join(DefaultLexiconDir(), name)
}
