package domain

import "path/filepath"

// ConfigFileName is the file name used by both the global and the local
// configuration.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the per-directory override file looked up in the
// working directory.
const LocalConfigFileName = ".taskdeck.toml"

// Storage backend names accepted by [storage].backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the merged application configuration.
type Config struct {
	// Identity is the default user identity when neither the --user flag
	// nor the environment provides one.
	Identity string

	Storage StorageConfig
	Log     LogConfig

	// Warnings collects unknown keys found while parsing, reported once
	// at startup rather than failing the load.
	Warnings []string
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend    string // "file" or "sqlite"
	Dir        string // data directory for the file backend
	SQLitePath string // database path for the sqlite backend
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string
}

// NewDefaultConfig returns the built-in defaults. Paths are left empty
// here and resolved against the data directory by the caller.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendFile},
		Log:     LogConfig{Level: "info"},
	}
}

// GlobalConfigDir returns the global configuration directory under the
// given config home (typically $XDG_CONFIG_HOME).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "taskdeck")
}
