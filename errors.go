package convo

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message or transcript failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownTheme indicates a theme name that has no palette.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrUnsupportedFormat indicates a transcript file in a format or
	// envelope version that cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
