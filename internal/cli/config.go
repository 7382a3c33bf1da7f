package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/profitplug/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the profitplug configuration file",
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration (defaults, file and environment combined) as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			data, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			cmd.Printf("# %s\n", cfg.ConfigPath())
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration at ~/.profitplug/config.yaml, including
PROFITPLUG_* environment overrides.

This includes:
- api.base_url is an http or https URL with a host
- api.timeout_seconds is not negative
- logging.level and logging.format are recognized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.GetGlobalConfig().ConfigPath())
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Printf("Configuration is valid\n")
			return nil
		},
	}
}
