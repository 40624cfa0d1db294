package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.yml"))
	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Min, v)
}

func TestStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yml")
	s := NewStore(path)

	require.NoError(t, s.Save(72))
	v, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 72, v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme_value: 72\n", string(data))
}

func TestStoreClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme_value: 400\n"), 0644))

	v, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, Max, v)
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme_value: [oops\n"), 0644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}
