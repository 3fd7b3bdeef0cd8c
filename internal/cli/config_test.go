package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/config"
)

func TestConfigInitAndShow(t *testing.T) {
	c, _ := newTestContainer(t)
	c.ConfigManager = config.NewManagerWithGlobalDir(t.TempDir(), t.TempDir())
	// No identity needed for config commands.
	c.AppConfig = &domain.Config{}

	stdout, _, err := execute(t, c, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	stdout, _, err = execute(t, c, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Global:")
	assert.Contains(t, stdout, "[storage]")
	assert.Contains(t, stdout, "Local:")

	_, _, err = execute(t, c, "config", "init")
	assert.ErrorContains(t, err, "already exists")
}
