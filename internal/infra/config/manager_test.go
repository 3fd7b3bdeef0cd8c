package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "taskdeck")
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	path, err := m.InitGlobalConfig()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[storage]")
}

func TestManager_InitGlobalConfigRefusesOverwrite(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `identity = "alice"`)
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	_, err := m.InitGlobalConfig()

	assert.ErrorIs(t, err, ErrConfigExists)

	info := m.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, "alice", "existing content untouched")
}

func TestManager_GetConfigInfoMissingFile(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), t.TempDir())

	global := m.GetGlobalConfigInfo()
	assert.False(t, global.Exists)
	assert.NotEmpty(t, global.Path)

	local := m.GetLocalConfigInfo()
	assert.False(t, local.Exists)
}
