package bubbletea

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
)

var _ tea.Model = CardScreen{}

// CardScreen is a top-level screen showing a single card.
type CardScreen struct {
	card   *Card
	keys   KeyMap
	help   help.Model
	logger *slog.Logger

	width  int
	height int
	ready  bool
}

// NewCardScreen creates a screen displaying msg in a collapsed card.
func NewCardScreen(msg convo.Message, theme convo.Theme, opts ...Option) CardScreen {
	o := newOptions(opts)
	h := help.New()
	h.Styles = NewStyles(theme).helpStyles()
	return CardScreen{
		card:   NewCard(msg, theme, o.cardOpts...),
		keys:   o.keys,
		help:   h,
		logger: o.logger,
	}
}

// Card returns the displayed card.
func (m CardScreen) Card() *Card { return m.card }

// Init implements tea.Model.
func (m CardScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CardScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case FrameMsg:
		_, cmd := m.card.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.toggle()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.card.InToggleRegion(msg.X, msg.Y, m.width) {
			return m.toggle()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m CardScreen) View() string {
	if !m.ready {
		return "Initializing..."
	}
	view := m.card.View(m.width)
	pad := max(m.height-lipgloss.Height(view)-1, 0)
	return view + strings.Repeat("\n", pad+1) + m.help.View(screenKeys(m.keys))
}

func (m CardScreen) toggle() (tea.Model, tea.Cmd) {
	_, cmd := m.card.Update(ToggleMsg{})
	m.logger.Debug("toggle card", "expanded", m.card.Expanded())
	return m, cmd
}
