package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv("PROFITPLUG_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	// Test GetGlobalConfig initializes if needed
	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)

	// Test that subsequent calls return the same instance
	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	// Test ResetGlobalConfigForTest resets the instance
	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestConfigGetters(t *testing.T) {
	t.Setenv("PROFITPLUG_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	assert.Equal(t, DefaultTab, GetDefaultTab())

	cfg := GetGlobalConfig()
	cfg.UI.DefaultTab = "market"
	cfg.Logging.Level = "debug"

	assert.Equal(t, "market", GetDefaultTab())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "pp")
	t.Setenv("PROFITPLUG_HOME", home)

	require.NoError(t, EnsureConfigDir())

	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultLogFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROFITPLUG_HOME", home)

	path, err := DefaultLogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "profitplug.log"), path)
}
