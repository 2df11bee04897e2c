package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
)

// PreviewCard renders msg once under the light theme and once under the
// dark theme, each headed by its mode name. Previews are static: no
// event loop and no transitions.
func PreviewCard(msg convo.Message, width int, opts ...CardOption) string {
	modes := []struct {
		label string
		theme convo.Theme
	}{
		{"Light Mode", convo.LightTheme()},
		{"Dark Mode", convo.DarkTheme()},
	}
	opts = append(opts[:len(opts):len(opts)], WithoutAnimation())

	var b strings.Builder
	for i, mode := range modes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(NewStyles(mode.theme).Muted.Render(mode.label))
		b.WriteString("\n")
		b.WriteString(NewCard(msg, mode.theme, opts...).View(width))
	}
	return b.String()
}

// PreviewConversation renders the first screen of a Conversation over t.
func PreviewConversation(t convo.Transcript, theme convo.Theme, width, height int, opts ...Option) string {
	opts = append(opts[:len(opts):len(opts)], WithCardOptions(WithoutAnimation()))
	var m tea.Model = NewConversation(t, theme, opts...)
	m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m.View()
}
