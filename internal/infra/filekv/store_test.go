package filekv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	s := New(t.TempDir())

	err := s.Set("tasks_alice@example.com", `[{"id":"1"}]`)
	require.NoError(t, err)

	got, found, err := s.Get("tasks_alice@example.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestStore_GetMissingKey(t *testing.T) {
	s := New(t.TempDir())

	got, found, err := s.Get("tasks_nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestStore_SetReplacesValue(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Set("k", "first"))
	require.NoError(t, s.Set("k", "second"))

	got, found, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got)
}

func TestStore_KeysAreIsolated(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Set("tasks_a", "A"))
	require.NoError(t, s.Set("tasks_b", "B"))

	got, _, err := s.Get("tasks_a")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestStore_KeyEscaping(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.Set("tasks_a/b@example.com", "v"))

	// The key must map to a single flat file, not a nested path.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.IsDir())
	}

	got, found, err := s.Get("tasks_a/b@example.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", got)
}

func TestStore_Available(t *testing.T) {
	assert.True(t, New(filepath.Join(t.TempDir(), "nested")).Available())
	assert.False(t, New("").Available())
}
