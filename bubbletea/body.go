package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/convo"
	"github.com/fwojciec/convo/goldmark"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// BodyRenderer turns a message body into display lines for a card.
type BodyRenderer interface {
	// Lines returns the body wrapped to width. It always returns at least
	// one line.
	Lines(body string, width int) []string
	// Truncate fits line into width, ending it with an ellipsis to show
	// that more of the body is hidden.
	Truncate(line string, width int) string
}

// PlainBody renders the body as plain text, word-wrapped to the card.
type PlainBody struct{}

func (PlainBody) Lines(body string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(body)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func (PlainBody) Truncate(line string, width int) string {
	return runewidth.Truncate(line+ellipsis, width, ellipsis)
}

// MarkdownBody renders the body as markdown through goldmark.
type MarkdownBody struct {
	Theme convo.Theme
}

func (b MarkdownBody) Lines(body string, width int) []string {
	return strings.Split(goldmark.Render(body, width, b.Theme), "\n")
}

func (MarkdownBody) Truncate(line string, width int) string {
	return ansi.Truncate(line+ellipsis, width, ellipsis)
}
