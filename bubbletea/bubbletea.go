// Package bubbletea provides the Bubble Tea components of the conversation
// sample: an expandable message card, a lazily rendered list of cards and a
// single-card screen.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program for m. It blocks until the
// program exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ToggleMsg tells a card to flip between collapsed and expanded.
// Parents send it to the card the user tapped or focused.
type ToggleMsg struct{}

// FrameMsg advances the transition of the card with the matching ID.
// Cards ignore frames addressed to other cards.
type FrameMsg struct {
	ID int
}
