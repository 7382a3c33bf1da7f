package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.TimeoutSeconds)
	assert.True(t, cfg.UI.Markdown)
	assert.Equal(t, DefaultTab, cfg.UI.DefaultTab)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base_url: http://file.test:1234
  timeout_seconds: 5
ui:
  markdown: false
  default_tab: portfolio
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://file.test:1234", cfg.API.BaseURL)
		assert.Equal(t, 5, cfg.API.TimeoutSeconds)
		assert.False(t, cfg.UI.Markdown)
		assert.Equal(t, "portfolio", cfg.UI.DefaultTab)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("PROFITPLUG_API_BASE", "http://env.test:9000")
		t.Setenv("PROFITPLUG_UI_DEFAULT_TAB", "planning")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://env.test:9000", cfg.API.BaseURL)
		assert.Equal(t, "planning", cfg.UI.DefaultTab)
	})
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestNew_MalformedFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROFITPLUG_HOME", home)
	t.Setenv("PROFITPLUG_API_BASE", "http://env.test")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("api: [unterminated"), 0o600))

	cfg := New()
	assert.Equal(t, "http://env.test", cfg.API.BaseURL)
	assert.Equal(t, DefaultTab, cfg.UI.DefaultTab)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.API.BaseURL = "https://saved.test"
	cfg.UI.Markdown = false
	require.NoError(t, cfg.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://saved.test", reloaded.API.BaseURL)
	assert.False(t, reloaded.UI.Markdown)
}

func TestSave_NoPath(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.Save(), "config path not set")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "/api" },
			wantErr: "scheme must be http or https",
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.API.BaseURL = "http://" },
			wantErr: "missing host",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.TimeoutSeconds = -1 },
			wantErr: "timeout_seconds must be >= 0",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig("")
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "console"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)
	assert.Equal(t, "debug", out.Level)

	lc.File = "/tmp/pp.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/pp.log", out.File)
}

func TestDefault_IgnoresEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROFITPLUG_HOME", home)
	t.Setenv("PROFITPLUG_API_BASE", "http://env.test")

	cfg := Default()
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
}
