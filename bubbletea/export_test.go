package bubbletea

// Top exports the index of the first visible card for testing.
func Top(m Conversation) int {
	return m.top
}

// Progress exports the transition position of a card for testing.
func Progress(c *Card) float64 {
	return c.progress
}
