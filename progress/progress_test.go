package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-gate-runner/weapon"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.json"))

	p, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, 0, p.Coins)
	assert.Equal(t, weapon.MetaLevels{}, p.Levels)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	s := NewFileStore(path)
	want := Profile{Coins: 123, Levels: weapon.MetaLevels{Damage: 2, Rate: 1, Range: 6}}

	require.NoError(t, s.Save(want))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 123, got.Coins)
	assert.Equal(t, want.Levels, got.Levels)
	assert.Equal(t, profileVersion, got.Version)
}

func TestLoadClampsLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	blob := `{"coins": -4, "levels": {"damage": 99, "burst": -1, "count": 3}}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	p, err := NewFileStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 0, p.Coins)
	assert.Equal(t, weapon.ShopDamage.MaxLevel(), p.Levels.Damage)
	assert.Equal(t, 0, p.Levels.Burst)
	assert.Equal(t, 3, p.Levels.Count)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := NewFileStore(path).Load()
		assert.ErrorContains(t, err, "decode profile")
	})

	t.Run("version", func(t *testing.T) {
		path := filepath.Join(dir, "future.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 9}`), 0o644))
		_, err := NewFileStore(path).Load()
		assert.ErrorContains(t, err, "unsupported profile version")
	})
}

func TestSaveEmptyPath(t *testing.T) {
	assert.Error(t, NewFileStore("").Save(Profile{}))
}
