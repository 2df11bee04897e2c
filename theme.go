package convo

import (
	"fmt"
	"strings"
)

// Theme maps semantic colour tokens to hex RGB values. Renderers consume the
// tokens by name and never hardcode colours, so a card looks right under any
// palette. Hex values (rather than ANSI indices) are required because the
// expand transition interpolates between Surface and Primary.
type Theme struct {
	Name             string
	Primary          string // Expanded card background
	PrimaryVariant   string // Focus marker
	Secondary        string // Avatar border
	SecondaryVariant string // Author caption
	Surface          string // Collapsed card background
	OnPrimary        string // Body text on Primary
	OnSurface        string // Body text on Surface
	Muted            string // Help line, card border
}

// LightTheme returns the Material baseline light palette.
func LightTheme() Theme {
	return Theme{
		Name:             "light",
		Primary:          "#6200EE",
		PrimaryVariant:   "#3700B3",
		Secondary:        "#03DAC5",
		SecondaryVariant: "#018786",
		Surface:          "#FFFFFF",
		OnPrimary:        "#FFFFFF",
		OnSurface:        "#000000",
		Muted:            "#9E9E9E",
	}
}

// DarkTheme returns the Material baseline dark palette.
func DarkTheme() Theme {
	return Theme{
		Name:             "dark",
		Primary:          "#BB86FC",
		PrimaryVariant:   "#3700B3",
		Secondary:        "#03DAC5",
		SecondaryVariant: "#03DAC5",
		Surface:          "#121212",
		OnPrimary:        "#000000",
		OnSurface:        "#FFFFFF",
		Muted:            "#757575",
	}
}

// ThemeByName returns the palette registered under name (case-insensitive).
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("%q: %w", name, ErrUnknownTheme)
	}
}
