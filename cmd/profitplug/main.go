// Command profitplug is a terminal dashboard for a small personal-finance backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/profitplug/internal/cli"
	"github.com/rshade/profitplug/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the root command with a context cancelled on SIGINT/SIGTERM.
// Cobra has already printed any error it returns.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}
