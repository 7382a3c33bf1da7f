package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes").
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// ConfirmOverwrite asks whether an existing config file at path may be
// replaced. It returns immediately with Accepted=false when interactive is
// false.
//
// The prompt defaults to "No" when the user presses Enter without input.
// Valid inputs: "y", "Y", "yes", "Yes", "YES" for acceptance; anything else declines.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, interactive bool, path string) PromptResult {
	if !interactive {
		return PromptResult{Accepted: false}
	}

	_, _ = fmt.Fprintf(writer, "? %s already exists. Overwrite it with defaults? [y/N] ", path)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error (Ctrl+D) declines.
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
