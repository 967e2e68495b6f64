package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whichchain/whichchain/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "~/.whichchain", cfg.Home)
	assert.Empty(t, cfg.Registry.Dir)
	assert.Equal(t, "auto", cfg.Output.DefaultFormat)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
registry:
  dir: /etc/whichchain/defs
logging:
  level: debug
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/whichchain/defs", cfg.Registry.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, "auto", cfg.Output.DefaultFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := config.Path(dir)

	cfg := config.Defaults()
	cfg.Registry.Dir = "/tmp/defs"
	require.NoError(t, config.Save(cfg, path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Registry.Dir, loaded.Registry.Dir)
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv(config.EnvHome, "/srv/wc")
	t.Setenv(config.EnvRegistryDir, "  /srv/wc/defs\n")
	t.Setenv(config.EnvOutputFormat, "JSON")
	t.Setenv(config.EnvVerbose, "yes")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvNoColor, "1")

	cfg := config.Defaults()
	config.ApplyEnvironment(cfg)

	assert.Equal(t, "/srv/wc", cfg.Home)
	assert.Equal(t, "/srv/wc/defs", cfg.Registry.Dir)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestApplyEnvironmentLeavesDefaults(t *testing.T) {
	for _, key := range []string{
		config.EnvHome, config.EnvRegistryDir, config.EnvOutputFormat,
		config.EnvVerbose, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
	// NO_COLOR unset entirely.
	require.NoError(t, os.Unsetenv(config.EnvNoColor))

	cfg := config.Defaults()
	config.ApplyEnvironment(cfg)
	assert.Equal(t, config.Defaults(), cfg)
}
