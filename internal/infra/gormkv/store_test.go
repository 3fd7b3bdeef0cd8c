package gormkv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "taskdeck.db"))
	require.NoError(t, err)
	return s
}

func TestStore_SetGet(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("tasks_alice", `[{"id":"1"}]`))

	got, found, err := s.Get("tasks_alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestStore_GetMissingKey(t *testing.T) {
	s := openTestStore(t)

	got, found, err := s.Get("tasks_nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestStore_SetReplacesValue(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", "first"))
	require.NoError(t, s.Set("k", "second"))

	got, _, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestStore_Available(t *testing.T) {
	assert.True(t, openTestStore(t).Available())
	assert.False(t, (*Store)(nil).Available())
}
