package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whichchain/whichchain/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected config.LogLevel
	}{
		{"off lowercase", "off", config.LogLevelOff},
		{"off uppercase", "OFF", config.LogLevelOff},
		{"none", "none", config.LogLevelOff},
		{"error lowercase", "error", config.LogLevelError},
		{"error uppercase", "ERROR", config.LogLevelError},
		{"debug lowercase", "debug", config.LogLevelDebug},
		{"with whitespace", "  debug  ", config.LogLevelDebug},
		{"invalid returns error", "invalid", config.LogLevelError},
		{"empty returns error", "", config.LogLevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, config.ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "off", config.LogLevelOff.String())
	assert.Equal(t, "error", config.LogLevelError.String())
	assert.Equal(t, "debug", config.LogLevelDebug.String())
	assert.Equal(t, "error", config.LogLevel(99).String())
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wc.log")
	logger, err := config.NewLogger(config.LogLevelDebug, path)
	require.NoError(t, err)

	logger.Error("load failed for %s", "kusama")
	logger.Debug("loaded %d chains", 29)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) // #nosec G304 -- test-owned temp path
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "ERROR load failed for kusama")
	assert.Contains(t, content, "DEBUG loaded 29 chains")
}

func TestLoggerLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wc.log")
	logger, err := config.NewLogger(config.LogLevelError, path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Error("shown")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) // #nosec G304 -- test-owned temp path
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestLoggerOffOpensNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wc.log")
	logger, err := config.NewLogger(config.LogLevelOff, path)
	require.NoError(t, err)

	logger.Error("nothing happens")
	require.NoError(t, logger.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "off level must not create the log file")
}

func TestNullLoggerIsSilent(t *testing.T) {
	logger := config.NullLogger()
	logger.Error("nothing happens")
	logger.Debug("nothing happens")
	assert.NoError(t, logger.Close())
}
