package bubbletea

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/samber/lo"
)

var _ tea.Model = Conversation{}

const focusGutter = 1 // column left of every card for the focus marker

// Conversation renders one Card per message, top to bottom in input order,
// in a scrollable list. Only the cards that fit on screen are rendered.
type Conversation struct {
	cards  []*Card
	title  string
	styles Styles
	keys   KeyMap
	help   help.Model
	logger *slog.Logger

	focus int // index of the focused card
	top   int // index of the first visible card

	width  int
	height int
	ready  bool
}

// NewConversation creates a Conversation over the transcript's messages.
// Every card starts collapsed.
func NewConversation(t convo.Transcript, theme convo.Theme, opts ...Option) Conversation {
	o := newOptions(opts)
	styles := NewStyles(theme)

	h := help.New()
	h.Styles = styles.helpStyles()

	cards := lo.Map(t.Messages, func(msg convo.Message, _ int) *Card {
		return NewCard(msg, theme, o.cardOpts...)
	})

	return Conversation{
		cards:  cards,
		title:  t.Title,
		styles: styles,
		keys:   o.keys,
		help:   h,
		logger: o.logger,
	}
}

// Len returns the number of cards.
func (m Conversation) Len() int { return len(m.cards) }

// Card returns the i-th card.
func (m Conversation) Card(i int) *Card { return m.cards[i] }

// Focus returns the index of the focused card.
func (m Conversation) Focus() int { return m.focus }

// Init implements tea.Model.
func (m Conversation) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Conversation) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m = m.ensureVisible()
		return m, nil

	case FrameMsg:
		for i, c := range m.cards {
			if c.ID() == msg.ID {
				_, cmd := c.Update(msg)
				if i == m.focus {
					// The focused card grows frame by frame.
					m = m.ensureVisible()
				}
				return m, cmd
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Conversation) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}

	rows := m.rows()
	for len(rows) < m.listHeight() {
		rows = append(rows, "")
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Conversation) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle(m.focus)
	case key.Matches(msg, m.keys.Up):
		m = m.moveFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Down):
		m = m.moveFocus(m.focus + 1)
	case key.Matches(msg, m.keys.PageUp):
		m = m.moveFocus(m.focus - max(len(m.window())-1, 1))
	case key.Matches(msg, m.keys.PageDown):
		m = m.moveFocus(m.focus + max(len(m.window())-1, 1))
	case key.Matches(msg, m.keys.Home):
		m = m.moveFocus(0)
	case key.Matches(msg, m.keys.End):
		m = m.moveFocus(len(m.cards) - 1)
	}
	return m, nil
}

func (m Conversation) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || len(m.cards) == 0 {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m = m.scroll(-1)
	case tea.MouseButtonWheelDown:
		m = m.scroll(1)
	case tea.MouseButtonLeft:
		y := msg.Y - m.headerHeight()
		for _, s := range m.window() {
			if y >= s.start && y < s.start+s.height {
				if m.cards[s.index].InToggleRegion(msg.X-focusGutter, y-s.start, m.cardWidth()) {
					m.focus = s.index
					return m.toggle(s.index)
				}
				break
			}
		}
	}
	return m, nil
}

func (m Conversation) toggle(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.cards) {
		return m, nil
	}
	_, cmd := m.cards[i].Update(ToggleMsg{})
	m.logger.Debug("toggle card", "index", i, "expanded", m.cards[i].Expanded())
	m = m.ensureVisible()
	return m, cmd
}

func (m Conversation) moveFocus(i int) Conversation {
	if len(m.cards) == 0 {
		return m
	}
	m.focus = lo.Clamp(i, 0, len(m.cards)-1)
	return m.ensureVisible()
}

// scroll moves the window by delta cards and drags the focus along when it
// would leave the screen. The focus only lands on cards shown whole; a card
// taller than the list counts as shown when it is first.
func (m Conversation) scroll(delta int) Conversation {
	m.top = lo.Clamp(m.top+delta, 0, len(m.cards)-1)
	w := m.window()
	if len(w) == 0 {
		return m
	}
	first, last := w[0].index, w[0].index
	for _, s := range w[1:] {
		if s.start+s.height > m.listHeight() {
			break
		}
		last = s.index
	}
	m.focus = lo.Clamp(m.focus, first, last)
	return m
}

// ensureVisible adjusts top so the focused card is on screen, whole if it
// fits.
func (m Conversation) ensureVisible() Conversation {
	if len(m.cards) == 0 || !m.ready {
		return m
	}
	if m.focus < m.top {
		m.top = m.focus
		return m
	}
	width := m.cardWidth()
	for m.top < m.focus {
		used := 0
		for i := m.top; i <= m.focus; i++ {
			used += m.cards[i].Height(width)
		}
		if used <= m.listHeight() {
			break
		}
		m.top++
	}
	return m
}

// span is a card placed in the visible window.
type span struct {
	index  int
	start  int // first row, relative to the top of the list
	height int
	view   string
}

// window renders cards from top until the list area is full. Cards below
// the window are never rendered.
func (m Conversation) window() []span {
	var spans []span
	width := m.cardWidth()
	row := 0
	for i := m.top; i < len(m.cards) && row < m.listHeight(); i++ {
		view := m.cards[i].View(width)
		h := lipgloss.Height(view)
		spans = append(spans, span{index: i, start: row, height: h, view: view})
		row += h
	}
	return spans
}

// rows lays out the window with the focus gutter, clipped to the list area.
func (m Conversation) rows() []string {
	var rows []string
	for _, s := range m.window() {
		marker := " "
		if s.index == m.focus {
			marker = m.styles.Focus.Render("▌")
		}
		for _, line := range strings.Split(s.view, "\n") {
			rows = append(rows, marker+line)
		}
	}
	if len(rows) > m.listHeight() {
		rows = rows[:m.listHeight()]
	}
	return rows
}

func (m Conversation) cardWidth() int {
	return max(m.width-focusGutter, 1)
}

func (m Conversation) headerHeight() int {
	if m.title == "" {
		return 0
	}
	return 1
}

func (m Conversation) listHeight() int {
	const helpHeight = 1
	return max(m.height-m.headerHeight()-helpHeight, 1)
}
