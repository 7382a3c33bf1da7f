package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/profitplug/internal/logging"
	"github.com/rshade/profitplug/internal/payload"
)

// Fetcher loads the JSON document at path.
type Fetcher interface {
	FetchJSON(ctx context.Context, path string) (payload.Payload, error)
}

// fetchResultMsg carries a completed fetch back to the event loop. requestID
// identifies the cycle that issued it.
type fetchResultMsg struct {
	requestID int
	tabKey    string
	payload   payload.Payload
	err       error
}

// fetchTab returns a command that fetches tab's path. Each cycle gets its own
// trace ID so its log lines can be correlated.
func fetchTab(ctx context.Context, fetcher Fetcher, tab Tab, requestID int) tea.Cmd {
	return func() tea.Msg {
		cycleCtx := logging.ContextWithTraceID(ctx, logging.NewTraceID())
		p, err := fetcher.FetchJSON(cycleCtx, tab.Path)
		return fetchResultMsg{requestID: requestID, tabKey: tab.Key, payload: p, err: err}
	}
}
