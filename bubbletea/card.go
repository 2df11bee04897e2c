package bubbletea

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

const (
	rowPadding     = 1 // columns left and right of a card
	avatarGap      = 1 // columns between avatar and author/body column
	containerFrame = 4 // border and padding around the body text
	minBodyWidth   = 8

	frameRate = 60

	// A critically damped spring with stiffness 1500: fast, no overshoot,
	// at rest after roughly 0.3s.
	springFrequency = 38.7
	springDamping   = 1.0
	restDelta       = 0.001
	restVelocity    = 0.01
)

var lastCardID atomic.Int64

func nextCardID() int {
	return int(lastCardID.Add(1))
}

// CardOption configures a Card.
type CardOption func(*Card)

// WithBodyRenderer sets how the message body is turned into lines.
// The default is PlainBody.
func WithBodyRenderer(r BodyRenderer) CardOption {
	return func(c *Card) { c.body = r }
}

// WithMarkdownBody renders the body as markdown in the card's own theme.
func WithMarkdownBody() CardOption {
	return func(c *Card) { c.body = MarkdownBody{Theme: c.theme} }
}

// WithoutAnimation makes toggles take effect on the next render instead of
// transitioning over several frames.
func WithoutAnimation() CardOption {
	return func(c *Card) { c.animate = false }
}

// Card renders one message as an avatar, an author caption and the body in
// a rounded container. The card owns its expanded flag: it starts collapsed,
// and only a ToggleMsg changes it.
//
// Collapsed, the container uses the theme's Surface colour and shows one
// line of body. Expanded, it uses Primary and shows the whole body. Both the
// colour and the number of visible rows follow a spring between the two
// states, advanced by FrameMsg.
type Card struct {
	id  int
	msg convo.Message

	expanded bool
	progress float64 // 0 collapsed, 1 expanded
	velocity float64
	moving   bool
	animate  bool
	spring   harmonica.Spring

	theme   convo.Theme
	styles  Styles
	palette palette
	body    BodyRenderer

	// The body never changes, so wrapped lines are cached per width.
	linesByWidth map[int][]string
}

// NewCard creates a collapsed Card for msg.
func NewCard(msg convo.Message, theme convo.Theme, opts ...CardOption) *Card {
	c := &Card{
		id:           nextCardID(),
		msg:          msg,
		animate:      true,
		spring:       harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		theme:        theme,
		styles:       NewStyles(theme),
		palette:      newPalette(theme),
		body:         PlainBody{},
		linesByWidth: make(map[int][]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies the card in FrameMsg.
func (c *Card) ID() int { return c.id }

// Message returns the message the card displays.
func (c *Card) Message() convo.Message { return c.msg }

// Expanded reports the card's current target state.
func (c *Card) Expanded() bool { return c.expanded }

// Animating reports whether a transition is still in flight.
func (c *Card) Animating() bool { return c.moving }

// Background returns the container's current background colour as hex.
func (c *Card) Background() string {
	return c.palette.background(c.progress)
}

func (c *Card) Update(msg tea.Msg) (*Card, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		c.expanded = !c.expanded
		if !c.animate {
			c.progress, c.velocity = c.target(), 0
			return c, nil
		}
		if c.moving {
			// A frame is already scheduled; the spring heads for the new
			// target from where it is.
			return c, nil
		}
		c.moving = true
		return c, c.frame()

	case FrameMsg:
		if msg.ID != c.id || !c.moving {
			return c, nil
		}
		if c.step() {
			return c, c.frame()
		}
		return c, nil
	}
	return c, nil
}

func (c *Card) View(width int) string {
	avatar := c.styles.avatar(c.msg.Author)
	colWidth := c.columnWidth(width, lipgloss.Width(avatar))
	bodyWidth := colWidth - containerFrame

	author := c.styles.Author.Render(runewidth.Truncate(c.msg.Author, colWidth, ellipsis))
	container := c.styles.Container.
		Background(hexColor(c.palette.background(c.progress))).
		Foreground(hexColor(c.palette.foreground(c.progress))).
		Width(colWidth - 2).
		Render(strings.Join(c.visibleBody(bodyWidth), "\n"))

	column := lipgloss.JoinVertical(lipgloss.Left, author, container)
	row := lipgloss.JoinHorizontal(lipgloss.Top, avatar, strings.Repeat(" ", avatarGap), column)
	return c.styles.Row.Render(row)
}

// Height returns the number of terminal rows View(width) occupies.
func (c *Card) Height(width int) int {
	return lipgloss.Height(c.View(width))
}

// VisibleLines returns how many body rows the card shows at width.
func (c *Card) VisibleLines(width int) int {
	avatarWidth := lipgloss.Width(c.styles.avatar(c.msg.Author))
	return len(c.visibleBody(c.columnWidth(width, avatarWidth) - containerFrame))
}

// InToggleRegion reports whether the card-local cell (x, y) lies on the
// author caption or the body container, the area that toggles on click.
func (c *Card) InToggleRegion(x, y, width int) bool {
	avatarWidth := lipgloss.Width(c.styles.avatar(c.msg.Author))
	left := rowPadding + avatarWidth + avatarGap
	right := left + c.columnWidth(width, avatarWidth)
	rows := 1 + c.VisibleLines(width) + 2 // caption, body, container border
	return x >= left && x < right && y >= 0 && y < rows
}

func (c *Card) columnWidth(width, avatarWidth int) int {
	return max(width-2*rowPadding-avatarWidth-avatarGap, minBodyWidth+containerFrame)
}

func (c *Card) visibleBody(width int) []string {
	lines, ok := c.linesByWidth[width]
	if !ok {
		lines = c.body.Lines(c.msg.Body, width)
		if len(lines) == 0 {
			lines = []string{""}
		}
		c.linesByWidth[width] = lines
	}
	n := lo.Clamp(1+int(math.Round(c.progress*float64(len(lines)-1))), 1, len(lines))
	if n == len(lines) {
		return lines
	}
	visible := make([]string, n)
	copy(visible, lines[:n])
	visible[n-1] = c.body.Truncate(visible[n-1], width)
	return visible
}

func (c *Card) target() float64 {
	if c.expanded {
		return 1
	}
	return 0
}

// step advances the spring by one frame and reports whether it is still
// moving.
func (c *Card) step() bool {
	target := c.target()
	c.progress, c.velocity = c.spring.Update(c.progress, c.velocity, target)
	if math.Abs(c.progress-target) < restDelta && math.Abs(c.velocity) < restVelocity {
		c.progress, c.velocity = target, 0
		c.moving = false
		return false
	}
	return true
}

func (c *Card) frame() tea.Cmd {
	id := c.id
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// palette holds the two ends of the colour transition.
type palette struct {
	surface, primary     string
	onSurface, onPrimary string
}

func newPalette(t convo.Theme) palette {
	return palette{
		surface:   t.Surface,
		primary:   t.Primary,
		onSurface: t.OnSurface,
		onPrimary: t.OnPrimary,
	}
}

func (p palette) background(progress float64) string {
	return blend(p.surface, p.primary, progress)
}

func (p palette) foreground(progress float64) string {
	return blend(p.onSurface, p.onPrimary, progress)
}

// blend interpolates two hex colours in CIE-L*a*b* space. The end points are
// returned verbatim.
func blend(from, to string, t float64) string {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		if t < 0.5 {
			return from
		}
		return to
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
