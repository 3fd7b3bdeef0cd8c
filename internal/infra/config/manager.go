package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ConfigInfo describes one configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ErrConfigExists is returned when init would overwrite an existing file.
var ErrConfigExists = errors.New("config file already exists")

// configTemplate is written by InitGlobalConfig. Every key is commented
// out so the defaults stay in effect until the user edits the file.
const configTemplate = `# taskdeck configuration

# Default user identity. Overridden by --user and TASKDECK_USER.
# identity = "alice"

[storage]
# backend = "file"      # "file" or "sqlite"
# dir = ""              # data directory for the file backend
# sqlite_path = ""      # database path for the sqlite backend

[log]
# level = "info"        # debug, info, warn, error
`

// Manager manages configuration files.
type Manager struct {
	localDir      string
	globalConfDir string
}

// NewManager creates a new Manager.
func NewManager(localDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global
// config directory. This is useful for testing.
func NewManagerWithGlobalDir(localDir, globalConfDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() ConfigInfo {
	if m.globalConfDir == "" {
		return ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// GetLocalConfigInfo returns information about the local override file.
func (m *Manager) GetLocalConfigInfo() ConfigInfo {
	if m.localDir == "" {
		return ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.localDir, domain.LocalConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return ConfigInfo{Path: path}
	}
	return ConfigInfo{Path: path, Content: string(content), Exists: true}
}

// InitGlobalConfig creates the global config file with a commented
// template. Existing files are never overwritten.
func (m *Manager) InitGlobalConfig() (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, ErrConfigExists
	}

	return path, os.WriteFile(path, []byte(configTemplate), 0o600)
}
