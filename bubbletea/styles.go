package bubbletea

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Author    lipgloss.Style // Author caption above the body
	Avatar    lipgloss.Style // Rounded frame around the author's initial
	Container lipgloss.Style // Rounded frame around the body; colours are animated
	Row       lipgloss.Style // Padding around a whole card
	Title     lipgloss.Style
	Focus     lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t convo.Theme) Styles {
	return Styles{
		Author: lipgloss.NewStyle().Foreground(hexColor(t.SecondaryVariant)).Bold(true),
		Avatar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hexColor(t.Secondary)).
			Padding(0, 1),
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hexColor(t.Muted)).
			Padding(0, 1),
		Row:   lipgloss.NewStyle().Padding(0, rowPadding, 1, rowPadding),
		Title: lipgloss.NewStyle().Foreground(hexColor(t.Primary)).Bold(true),
		Focus: lipgloss.NewStyle().Foreground(hexColor(t.PrimaryVariant)),
		Muted: lipgloss.NewStyle().Foreground(hexColor(t.Muted)),
	}
}

// helpStyles themes the bubbles help line with the muted colour.
func (s Styles) helpStyles() help.Styles {
	hs := help.New().Styles
	hs.ShortKey = s.Muted.Bold(true)
	hs.ShortDesc = s.Muted
	hs.ShortSeparator = s.Muted
	hs.FullKey = s.Muted.Bold(true)
	hs.FullDesc = s.Muted
	hs.FullSeparator = s.Muted
	return hs
}

func hexColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}
