package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/rshade/profitplug/internal/payload"
	"github.com/rshade/profitplug/internal/tui"
)

// defaultShowWidth is used when stdout is not a terminal.
const defaultShowWidth = 80

type showOptions struct {
	all  bool
	json bool
	tabs []string
}

// tabResult is the outcome of fetching one tab.
type tabResult struct {
	tab     tui.Tab
	payload payload.Payload
	err     error
}

// jsonTabResult is one line of `show --json` output.
type jsonTabResult struct {
	Tab   string          `json:"tab"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

func newShowCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:       "show [tab...]",
		Short:     "Print tabs once without the interactive dashboard",
		Long:      "Fetches the selected tabs concurrently and prints them in tab order. Exits non-zero if any tab failed.",
		ValidArgs: tui.TabKeys(),
		Args:      cobra.OnlyValidArgs,
		Example: `  # Print every tab
  profitplug show --all

  # Print the portfolio and planning tabs
  profitplug show portfolio planning

  # Print raw payloads, one JSON document per line
  profitplug show --all --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.tabs = args
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "print every tab (default when no tab is named)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print raw payloads as JSON lines")

	return cmd
}

// runShow fetches the selected tabs and writes them to stdout. Every tab is
// printed even when some fail; the returned error lists the failures.
func runShow(cmd *cobra.Command, opts showOptions) error {
	selected, err := selectTabs(opts)
	if err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	results := fetchTabs(ctx, client, selected)

	out := cmd.OutOrStdout()
	if opts.json {
		err = writeJSONResults(out, results)
	} else {
		writeTextResults(out, results, outputWidth())
	}
	if err != nil {
		return err
	}

	var failed []string
	for _, r := range results {
		if r.err != nil {
			failed = append(failed, r.tab.Key)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to fetch %d of %d tabs: %s", len(failed), len(results), strings.Join(failed, ", "))
	}
	return nil
}

// selectTabs resolves the tabs to print, in tab order and without duplicates.
func selectTabs(opts showOptions) ([]tui.Tab, error) {
	if opts.all || len(opts.tabs) == 0 {
		return tui.Tabs(), nil
	}

	want := make(map[string]bool, len(opts.tabs))
	for _, key := range opts.tabs {
		if _, err := tui.TabByKey(key); err != nil {
			return nil, err
		}
		want[key] = true
	}

	var selected []tui.Tab
	for _, t := range tui.Tabs() {
		if want[t.Key] {
			selected = append(selected, t)
		}
	}
	return selected, nil
}

// fetchTabs fetches every tab concurrently. A failed tab does not cancel the
// others.
func fetchTabs(ctx context.Context, f tui.Fetcher, selected []tui.Tab) []tabResult {
	results := make([]tabResult, len(selected))

	g, gCtx := errgroup.WithContext(ctx)
	for i, t := range selected {
		i, t := i, t
		g.Go(func() error {
			p, err := f.FetchJSON(gCtx, t.Path)
			results[i] = tabResult{tab: t, payload: p, err: err}
			if err != nil {
				logger.Warn().Ctx(ctx).Err(err).Str("tab", t.Key).Msg("fetch failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func writeTextResults(w io.Writer, results []tabResult, width int) {
	for i, r := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, tui.SectionStyle.Render("["+r.tab.Label+"]"))

		res := tui.Result{Payload: r.payload}
		if r.err != nil {
			res = tui.Result{Error: r.err.Error()}
		}
		_, _ = fmt.Fprintln(w, tui.RenderResult(res, tui.RenderOptions{Width: width}))
	}
}

func writeJSONResults(w io.Writer, results []tabResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		line := jsonTabResult{Tab: r.tab.Key}
		if r.err != nil {
			line.Error = r.err.Error()
		} else {
			line.Data = r.payload.Raw()
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("writing %s payload: %w", r.tab.Key, err)
		}
	}
	return nil
}

func outputWidth() int {
	if !isTerminal(os.Stdout) {
		return defaultShowWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultShowWidth
	}
	return w
}
