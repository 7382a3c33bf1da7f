package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/profitplug/internal/config"
	"github.com/rshade/profitplug/internal/tui"
)

// runDashboard opens the interactive dashboard on tabKey, or on the configured
// default tab when tabKey is empty.
func runDashboard(cmd *cobra.Command, tabKey string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	if tabKey == "" {
		tabKey = config.GetDefaultTab()
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	var md *tui.MarkdownRenderer
	if cfg.UI.Markdown {
		md = tui.NewMarkdownRenderer(markdownStyle())
	}

	model, err := tui.NewDashboardModel(ctx, client, tui.Options{InitialTab: tabKey, Markdown: md})
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).Str("tab", tabKey).Bool("markdown", md != nil).Msg("starting dashboard")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// markdownStyle picks the glamour style for the terminal background. The
// terminal is queried once, before the program takes over stdin.
func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return tui.MarkdownStyleDark
	}
	return tui.MarkdownStyleLight
}
