package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultAPIBaseURL = "http://127.0.0.1:8000"
	DefaultTab        = "intro"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"

	envPrefix       = "PROFITPLUG"
	envAPIBase      = "PROFITPLUG_API_BASE"
	configFileName  = "config.yaml"
	outputTypeFile  = "file"
	logFileBaseName = "profitplug.log"
)

// Config is the complete profitplug configuration.
type Config struct {
	API     APIConfig     `yaml:"api"     mapstructure:"api"`
	UI      UIConfig      `yaml:"ui"      mapstructure:"ui"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	configPath string
}

// APIConfig controls how the dashboard reaches its backend.
type APIConfig struct {
	// BaseURL is prefixed to every endpoint path.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// TimeoutSeconds bounds a single request; 0 leaves the transport default.
	TimeoutSeconds int `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// UIConfig controls dashboard presentation.
type UIConfig struct {
	// Markdown renders article payloads through glamour.
	Markdown bool `yaml:"markdown" mapstructure:"markdown"`
	// DefaultTab is the key of the tab selected at startup.
	DefaultTab string `yaml:"default_tab" mapstructure:"default_tab"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"  mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file"   mapstructure:"file"`
}

// New loads configuration from defaults, the config file (if present) and
// PROFITPLUG_* environment variables, in increasing order of precedence.
// A malformed config file is logged and ignored so the dashboard still starts.
func New() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = "."
	}
	cfg, err := Load(filepath.Join(dir, configFileName))
	if err != nil {
		logger := GetLogger()
		logger.Warn().Err(err).Msg("ignoring unreadable config file, using defaults")
		cfg = defaultConfig(filepath.Join(dir, configFileName))
		applyEnv(cfg)
	}
	return cfg
}

// Load reads the config file at path layered over defaults and environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if _, err := os.Stat(path); err == nil {
		if readErr := v.ReadInConfig(); readErr != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, readErr)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot access config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	cfg.configPath = path
	return cfg, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The short name wins over the derived PROFITPLUG_API_BASE_URL.
	_ = v.BindEnv("api.base_url", envAPIBase, envPrefix+"_API_BASE_URL")

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultAPIBaseURL)
	v.SetDefault("api.timeout_seconds", 0)
	v.SetDefault("ui.markdown", true)
	v.SetDefault("ui.default_tab", DefaultTab)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("logging.file", "")
}

// Default returns the built-in defaults, ignoring the config file and
// environment, addressed at the usual config file location.
func Default() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = "."
	}
	return defaultConfig(filepath.Join(dir, configFileName))
}

func defaultConfig(path string) *Config {
	return &Config{
		API:        APIConfig{BaseURL: DefaultAPIBaseURL},
		UI:         UIConfig{Markdown: true, DefaultTab: DefaultTab},
		Logging:    LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		configPath: path,
	}
}

// applyEnv applies only the base URL override. It backs New when the config
// file could not be parsed and viper is therefore unavailable.
func applyEnv(cfg *Config) {
	if base, ok := os.LookupEnv(envAPIBase); ok && base != "" {
		cfg.API.BaseURL = base
	}
}

// ConfigPath returns the file this configuration was loaded from or will be
// saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.configPath, err)
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate reports the first semantic problem in the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url: missing host in %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must be >= 0, got %d", c.API.TimeoutSeconds)
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
