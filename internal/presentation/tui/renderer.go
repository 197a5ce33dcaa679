package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With plain set, styling is disabled entirely so output stays readable
// when piped or when color is suppressed.
func NewRenderer(plain bool) func(string) (string, error) {
	var r *glamour.TermRenderer
	if plain {
		r, _ = glamour.NewTermRenderer(
			glamour.WithStandardStyle("notty"),
		)
	} else {
		r, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
