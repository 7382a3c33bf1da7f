package config

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/profitplug/internal/logging"
)

// Logger is the bootstrap logger used before the CLI has configured logging,
// for example while the config file itself is being read.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logMu protects concurrent access to Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger resets the bootstrap Logger to a console writer on stderr at the
// given level. level defaults to InfoLevel on parse error.
func InitLogger(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// GetLogger returns the bootstrap logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

//nolint:gochecknoinits // intentional: package-level logger must be initialized before use
func init() {
	InitLogger("info")
}

// ToLoggingConfig converts config.LoggingConfig to logging.Config.
//
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: false,
	}
}

// GetLoggingConfig returns a copy of the Logging section of the global
// configuration. Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	return cfg.Logging
}
