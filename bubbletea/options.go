package bubbletea

import (
	"io"
	"log/slog"
)

// Option configures a Conversation or a CardScreen.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	keys     KeyMap
	cardOpts []CardOption
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that records toggles and navigation at debug
// level. The default discards everything; the TUI owns stdout.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(o *options) { o.keys = k }
}

// WithCardOptions applies opts to every card the model creates.
func WithCardOptions(opts ...CardOption) Option {
	return func(o *options) { o.cardOpts = append(o.cardOpts, opts...) }
}
