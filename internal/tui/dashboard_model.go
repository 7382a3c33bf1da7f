package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/profitplug/internal/logging"
	"github.com/rshade/profitplug/internal/payload"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Phase is the position of the active tab within a selection cycle.
type Phase int

// Phases of a selection cycle.
const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSettled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Result is the outcome of a settled cycle: a payload, or an ErrorResult when
// Error is non-empty.
type Result struct {
	Payload payload.Payload
	Error   string
}

// IsError reports whether the result is an ErrorResult.
func (r Result) IsError() bool {
	return r.Error != ""
}

// ViewState is the dashboard state. Only DashboardModel.Update mutates it.
type ViewState struct {
	ActiveTab string
	Phase     Phase
	Result    Result
}

// IsLoading reports whether a fetch for the active tab is outstanding.
func (s ViewState) IsLoading() bool {
	return s.Phase == PhaseLoading
}

// Options configures a DashboardModel.
type Options struct {
	// InitialTab is the key of the tab selected at startup. Empty selects the first tab.
	InitialTab string
	// Markdown renders article payloads through glamour when non-nil.
	Markdown *MarkdownRenderer
}

// DashboardModel is the Bubble Tea model for the tabbed dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	ctx     context.Context
	fetcher Fetcher
	logger  zerolog.Logger

	state     ViewState
	requestID int

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	markdown *MarkdownRenderer

	width  int
	height int
}

// NewDashboardModel creates the dashboard with its first cycle already in the
// loading phase; Init issues the fetch.
func NewDashboardModel(ctx context.Context, fetcher Fetcher, opts Options) (DashboardModel, error) {
	initial := tabs[0]
	if opts.InitialTab != "" {
		t, err := TabByKey(opts.InitialTab)
		if err != nil {
			return DashboardModel{}, err
		}
		initial = t
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle

	m := DashboardModel{
		ctx:       ctx,
		fetcher:   fetcher,
		logger:    logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		state:     ViewState{ActiveTab: initial.Key, Phase: PhaseLoading},
		requestID: 1,
		spinner:   s,
		viewport:  viewport.New(defaultWidth, defaultHeight),
		help:      help.New(),
		keys:      defaultKeyMap(),
		markdown:  opts.Markdown,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.resize()
	return m, nil
}

// State returns a copy of the current view state.
func (m DashboardModel) State() ViewState {
	return m.state
}

// Init starts the spinner and the first fetch (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	tab, _ := TabByKey(m.state.ActiveTab)
	return tea.Batch(m.spinner.Tick, fetchTab(m.ctx, m.fetcher, tab, m.requestID))
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshContent()
		return m, nil

	case fetchResultMsg:
		return m.handleFetchResult(msg)

	case spinner.TickMsg:
		if !m.state.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.selectTab(m.activeIndex() + 1)
	case key.Matches(msg, m.keys.Prev):
		return m.selectTab(m.activeIndex() - 1)
	case key.Matches(msg, m.keys.Jump):
		return m.selectTab(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Refresh):
		return m.selectTab(m.activeIndex())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SelectTab starts a new cycle for the tab with the given key. Selecting the
// active tab restarts its cycle.
func (m DashboardModel) SelectTab(key string) (DashboardModel, tea.Cmd) {
	idx, ok := TabIndex(key)
	if !ok {
		return m, nil
	}
	next, cmd := m.selectTab(idx)
	return next.(DashboardModel), cmd
}

// selectTab moves to the tab at idx (wrapping) and begins a loading cycle.
// Bumping requestID marks every earlier in-flight fetch as stale.
func (m DashboardModel) selectTab(idx int) (tea.Model, tea.Cmd) {
	n := len(tabs)
	idx = ((idx % n) + n) % n
	tab := tabs[idx]

	m.requestID++
	m.state = ViewState{ActiveTab: tab.Key, Phase: PhaseLoading}
	m.viewport.SetContent("")

	m.logger.Debug().
		Ctx(m.ctx).
		Str("tab", tab.Key).
		Int("request_id", m.requestID).
		Msg("tab selected")

	return m, tea.Batch(m.spinner.Tick, fetchTab(m.ctx, m.fetcher, tab, m.requestID))
}

func (m DashboardModel) handleFetchResult(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	if msg.requestID != m.requestID {
		m.logger.Debug().
			Ctx(m.ctx).
			Str("tab", msg.tabKey).
			Int("request_id", msg.requestID).
			Int("current_request_id", m.requestID).
			Msg("discarding stale response")
		return m, nil
	}

	m.state.Phase = PhaseSettled
	if msg.err != nil {
		m.logger.Warn().Ctx(m.ctx).Err(msg.err).Str("tab", msg.tabKey).Msg("fetch failed")
		m.state.Result = Result{Error: msg.err.Error()}
	} else {
		m.state.Result = Result{Payload: msg.payload}
	}
	m.refreshContent()
	m.viewport.GotoTop()
	return m, nil
}

func (m DashboardModel) activeIndex() int {
	idx, _ := TabIndex(m.state.ActiveTab)
	return idx
}

// refreshContent re-renders the settled result into the viewport.
func (m *DashboardModel) refreshContent() {
	if m.state.Phase != PhaseSettled {
		return
	}
	m.viewport.SetContent(RenderResult(m.state.Result, RenderOptions{
		Width:    m.viewport.Width,
		Markdown: m.markdown,
	}))
}
