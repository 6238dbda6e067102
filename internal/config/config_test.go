package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ShowIcons)
	assert.Equal(t, "name", cfg.Sort)
	assert.False(t, cfg.GitIgnore)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "theme: nord\nsort: size\ndirs_first: true\nshow_icons: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "nord", cfg.Theme)
		assert.Equal(t, "size", cfg.Sort)
		assert.True(t, cfg.DirsFirst)
		assert.False(t, cfg.ShowIcons)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: dracula\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.ShowIcons)
		assert.Equal(t, "name", cfg.Sort)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0o600))

		cfg, err := LoadConfig(path)
		assert.Error(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("default location via XDG_CONFIG_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "lazyls"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "lazyls", "config.yaml"), []byte("long: true\n"), 0o600))

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.True(t, cfg.Long)
	})
}

func TestNormalizeThemeName(t *testing.T) {
	assert.Equal(t, "dracula", NormalizeThemeName("  Dracula "))
	assert.Equal(t, "nord", NormalizeThemeName("nord"))
	assert.Equal(t, "", NormalizeThemeName("no-such-theme"))
}
