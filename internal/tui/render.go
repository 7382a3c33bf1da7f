package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/profitplug/internal/payload"
)

// Layout constants.
const (
	bulletPrefix = "• "
	errorPrefix  = "Error: "
	totalLabel   = "Total"
)

// holdingsHeaders are the holdings table column titles.
//
//nolint:gochecknoglobals // Fixed column set.
var holdingsHeaders = []string{"Symbol", "Shares", "Price", "Value"}

// valueColumn is the index of the Value column in holdingsHeaders.
const valueColumn = 3

// RenderOptions controls payload rendering.
type RenderOptions struct {
	// Width is the available content width in columns.
	Width int
	// Markdown renders articles through glamour when non-nil.
	Markdown *MarkdownRenderer
}

// RenderResult renders a settled fetch: the error line for an ErrorResult,
// otherwise the payload.
func RenderResult(r Result, opts RenderOptions) string {
	if r.IsError() {
		return RenderError(r.Error)
	}
	if r.Payload.IsZero() {
		return ""
	}
	return RenderPayload(r.Payload, opts)
}

// RenderError renders an ErrorResult message.
func RenderError(msg string) string {
	return ErrorStyle.Render(errorPrefix + msg)
}

// RenderPayload picks the view template from the payload's discriminant field.
// A payload whose discriminant is present but whose shape does not decode is
// shown as a structural dump.
func RenderPayload(p payload.Payload, opts RenderOptions) string {
	switch p.Kind() {
	case payload.KindArticle:
		if a, err := p.Article(); err == nil {
			return RenderArticle(a, opts)
		}
	case payload.KindUpdates:
		if u, err := p.Updates(); err == nil {
			return RenderUpdates(u)
		}
	case payload.KindHoldings:
		if h, err := p.Holdings(); err == nil {
			return RenderHoldings(h)
		}
	case payload.KindSteps:
		if s, err := p.Steps(); err == nil {
			return RenderSteps(s)
		}
	case payload.KindRaw:
	}
	return RenderDump(p)
}

// RenderArticle renders sections of labelled blurbs, through glamour when a
// Markdown renderer is configured.
func RenderArticle(a payload.Article, opts RenderOptions) string {
	if opts.Markdown != nil {
		if out, err := opts.Markdown.Render(a.Markdown(), opts.Width); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	lines := []string{HeaderStyle.Render(a.Title.String())}
	for _, sec := range a.Sections {
		lines = append(lines, "", SectionStyle.Render(sec.Title.String()))
		for _, it := range sec.Items {
			lines = append(lines, bulletPrefix+LabelStyle.Render(it.Label())+": "+it.Blurb.String())
		}
	}
	return strings.Join(lines, "\n")
}

// RenderUpdates renders a bulleted list, one item per update, in order.
func RenderUpdates(u payload.Updates) string {
	lines := make([]string, 0, len(u.Updates)+2) //nolint:mnd // title + blank line.
	lines = append(lines, HeaderStyle.Render(u.Title.String()), "")
	for _, item := range u.Updates {
		lines = append(lines, bulletPrefix+item.String())
	}
	return strings.Join(lines, "\n")
}

// RenderSteps renders a numbered list.
func RenderSteps(s payload.Steps) string {
	lines := make([]string, 0, len(s.Steps)+2) //nolint:mnd // title + blank line.
	lines = append(lines, HeaderStyle.Render(s.Title.String()), "")
	for i, step := range s.Steps {
		lines = append(lines, strconv.Itoa(i+1)+". "+step.String())
	}
	return strings.Join(lines, "\n")
}

// RenderHoldings renders the holdings table with a total row.
func RenderHoldings(h payload.Holdings) string {
	rows := h.Rows()
	totalRow := len(rows)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(holdingsHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch row {
			case table.HeaderRow:
				return TableHeaderStyle
			case totalRow:
				style = TableTotalStyle
			default:
				style = TableCellStyle
			}
			if col == valueColumn {
				style = style.Inherit(ValueStyle)
			}
			return style
		})
	for _, r := range rows {
		t.Row(r.Symbol, r.Shares, r.Price, r.Value)
	}
	t.Row(totalLabel, "", "", payload.FormatMoney(h.Total()))

	return HeaderStyle.Render(h.Title.String()) + "\n\n" + t.Render()
}

// RenderDump renders the payload as indented JSON. Lines are styled one at a
// time so lipgloss never pads them.
func RenderDump(p payload.Payload) string {
	lines := strings.Split(p.Dump(), "\n")
	for i, line := range lines {
		lines[i] = SubtleStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}
