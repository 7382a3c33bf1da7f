package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/profitplug/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.profitplug/config.yaml (or $PROFITPLUG_HOME/config.yaml) with
default values. An existing file is left alone unless --force is given.`,
		Example: `  # Create configuration
  profitplug config init

  # Create configuration, overwriting existing
  profitplug config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	cfg := config.Default()

	// Check if config already exists and force isn't set
	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			answer := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), isTerminal(os.Stdin), cfg.ConfigPath())
			if !answer.Accepted {
				return errors.New("configuration file already exists, use --force to overwrite")
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
