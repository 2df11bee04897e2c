// Package goldmark renders message bodies written in markdown to ANSI-styled
// terminal lines, using goldmark for parsing and lipgloss for styling.
package goldmark

import "github.com/fwojciec/convo"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width; single newlines inside
// a paragraph are kept as line breaks, the way chat messages are typed. Code
// blocks are rendered without reflow.
func Render(source string, width int, theme convo.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
