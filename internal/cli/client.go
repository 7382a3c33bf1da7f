package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/profitplug/internal/api"
	"github.com/rshade/profitplug/internal/config"
	"github.com/rshade/profitplug/internal/logging"
)

// newClient builds the backend client from the global config, with --api-base
// taking precedence over the config file and environment.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	cfg := *config.GetGlobalConfig()

	if base, _ := cmd.Flags().GetString("api-base"); base != "" {
		cfg.API.BaseURL = base
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := []api.Option{api.WithLogger(*logging.FromContext(cmd.Context()))}
	if cfg.API.TimeoutSeconds > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second))
	}

	logger.Debug().
		Ctx(cmd.Context()).
		Str("base_url", cfg.API.BaseURL).
		Int("timeout_seconds", cfg.API.TimeoutSeconds).
		Msg("backend client configured")

	return api.NewClient(cfg.API.BaseURL, opts...), nil
}
