package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/profitplug/internal/logging"
	"github.com/rshade/profitplug/pkg/version"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the profitplug CLI.
// Without a subcommand it opens the interactive dashboard, or prints the --tab
// tab (every tab when unset) once when stdout is not a terminal.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithTerminal(ver, func() bool { return isTerminal(os.Stdout) })
}

// NewRootCmdWithTerminal creates the root command with an explicit terminal
// probe for testability.
func NewRootCmdWithTerminal(ver string, interactive func() bool) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		tabKey    string
	)

	cmd := &cobra.Command{
		Use:          "profitplug",
		Short:        "Your simple finance helper",
		Long:         "ProfitPlug: a terminal dashboard for intro, market, portfolio and planning data",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			dashboard := cmd == cmd.Root() && interactive()
			result := setupLogging(cmd, dashboard)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !interactive() {
				opts := showOptions{all: tabKey == ""}
				if tabKey != "" {
					opts.tabs = []string{tabKey}
				}
				return runShow(cmd, opts)
			}
			return runDashboard(cmd, tabKey)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("api-base", "", "backend base address (overrides config file and PROFITPLUG_API_BASE)")
	cmd.Flags().StringVar(&tabKey, "tab", "", "tab selected at startup (intro, market, portfolio, planning)")
	cmd.AddCommand(newShowCmd(), newConfigCmd())

	if !version.IsRelease(ver) {
		cmd.SetVersionTemplate("{{.Name}} version {{.Version}} (development build)\n")
	}

	return cmd
}

const rootCmdExample = `  # Open the dashboard
  profitplug

  # Open the dashboard on the portfolio tab against another backend
  profitplug --tab portfolio --api-base http://localhost:9000

  # Print every tab once
  profitplug show --all

  # Print the raw market payload
  profitplug show market --json

  # Initialize configuration
  profitplug config init`
