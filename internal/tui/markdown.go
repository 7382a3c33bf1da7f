package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour style names accepted by NewMarkdownRenderer.
const (
	MarkdownStyleDark  = "dark"
	MarkdownStyleLight = "light"
	MarkdownStyleNoTTY = "notty"
)

// minWrapWidth keeps glamour from wrapping every word on tiny terminals.
const minWrapWidth = 20

// MarkdownRenderer renders Markdown to the terminal, rebuilding the glamour
// renderer when the wrap width changes.
type MarkdownRenderer struct {
	style string

	mu       sync.Mutex
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer returns a renderer for the given glamour style.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{style: style}
}

// Render renders md wrapped at width columns.
func (r *MarkdownRenderer) Render(md string, width int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width < minWrapWidth {
		width = minWrapWidth
	}
	if r.renderer == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStylePath(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("creating markdown renderer: %w", err)
		}
		r.renderer = tr
		r.width = width
	}
	return r.renderer.Render(md)
}
