package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"

	"charm.land/lipgloss/v2"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Result is what a command reports on success, once per output mode
type Result struct {
	// Quiet values are printed one per line, e.g. task ids for shell capture
	Quiet []any
	// Fields are merged into the {"success": true} JSON envelope
	Fields map[string]interface{}
	// Human renders the text shown to people. It is only called in human mode.
	Human func() string
}

// Success writes r in the formatter's mode. Human output goes through
// lipgloss, which drops colors and styling when stdout is not a terminal.
func (f *OutputFormatter) Success(r Result) error {
	switch {
	case f.Quiet:
		for _, v := range r.Quiet {
			if _, err := fmt.Fprintln(os.Stdout, v); err != nil {
				return err
			}
		}
		return nil

	case f.JSON:
		envelope := map[string]interface{}{"success": true}
		maps.Copy(envelope, r.Fields)
		return json.NewEncoder(os.Stdout).Encode(envelope)

	default:
		if r.Human == nil {
			return nil
		}
		_, err := lipgloss.Fprintln(os.Stdout, r.Human())
		return err
	}
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}
