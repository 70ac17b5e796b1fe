// Package render holds text rendering shared by the CLI and the TUI
package render

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Markdown renders a task description as terminal markdown. If glamour
// fails the description is word-wrapped as plain text.
func Markdown(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return Placeholder("No description")
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return Wrap(description, width)
}

// Wrap word-wraps plain text to width
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// Placeholder renders muted italic text for empty fields
func Placeholder(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render(text)
}
