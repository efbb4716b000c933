package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders bot replies through glamour,
// so flow authors can use markdown in their messages. Wrapping is left to
// the terminal width.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light or dark background
	)
	if err != nil {
		// Degrade to plain text rather than refusing to chat.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
