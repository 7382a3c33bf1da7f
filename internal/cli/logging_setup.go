package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/profitplug/internal/config"
	"github.com/rshade/profitplug/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
//
// The dashboard owns the terminal, so when dashboard is true logs go to a file
// (the configured one, or ~/.profitplug/logs/profitplug.log) and are discarded
// if that file cannot be opened. The log directory is created when the file is
// opened, so a file dropped by --debug leaves nothing behind.
func setupLogging(cmd *cobra.Command, dashboard bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !dashboard {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	if dashboard && loggingCfg.File == "" {
		if path, err := config.DefaultLogFilePath(); err == nil {
			loggingCfg.File = path
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if dashboard && logCfg.File == "" {
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLoggerWithPath(logCfg)
	if dashboard && result.FallbackUsed {
		logCfg.Output = logging.OutputDiscard
		result = logging.NewLoggerWithPath(logCfg)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
