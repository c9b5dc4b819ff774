// Package model defines shared data structures.
package model

// Config defines practice settings resolved from flags and the config file.
type Config struct {
	Words int
	// Seed is nil when the word set should differ on every run.
	Seed        *uint64
	LexiconPath string
	LogPath     string
	LogLevel    string
}
