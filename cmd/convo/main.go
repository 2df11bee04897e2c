// Command convo shows expandable message cards in the terminal.
//
// Usage:
//
//	convo [flags]
//
// With no flags, convo shows a single card. Click it, or press enter, to
// expand and collapse it.
//
// Flags:
//
//	-conversation      Show the built-in sample conversation
//	-messages string   Path to a transcript (.json, .yaml, .yml) to show as a conversation
//	-theme string      Colour theme: light, dark (default from CONVO_THEME, else light)
//	-markdown          Render message bodies as markdown
//	-preview string    Print a static preview and exit: card, conversation
//	-width int         Preview width in columns
//	-log-file string   Write debug logs to this file
//
// Every flag except -conversation and -preview can also be set through a
// CONVO_* environment variable or a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	bt "github.com/fwojciec/convo/bubbletea"
	"github.com/fwojciec/convo/sample"
)

const previewHeight = 24

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "convo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	cfg, err := parseFlags(args, env)
	if err != nil {
		return err
	}

	if cfg.preview != "" {
		out, err := renderPreview(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	logger, closeLog, err := openLogger(cfg.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	model, err := buildModel(cfg, logger)
	if err != nil {
		return err
	}
	if err := bt.Run(ctx, model); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// buildModel picks the screen: a transcript file, the sample conversation,
// or the single greeting card.
func buildModel(cfg config, logger *slog.Logger) (tea.Model, error) {
	opts := []bt.Option{
		bt.WithLogger(logger),
		bt.WithCardOptions(cardOptions(cfg)...),
	}
	switch {
	case cfg.messages != "":
		t, err := loadTranscript(cfg.messages)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded transcript", "path", cfg.messages, "messages", len(t.Messages))
		return bt.NewConversation(t, cfg.theme, opts...), nil
	case cfg.conversation:
		return bt.NewConversation(sample.Conversation(), cfg.theme, opts...), nil
	default:
		return bt.NewCardScreen(sample.Greeting, cfg.theme, opts...), nil
	}
}

func renderPreview(cfg config) (string, error) {
	switch cfg.preview {
	case previewCard:
		return bt.PreviewCard(sample.Preview, cfg.width, cardOptions(cfg)...), nil
	case previewConversation:
		t := sample.Conversation()
		if cfg.messages != "" {
			var err error
			if t, err = loadTranscript(cfg.messages); err != nil {
				return "", err
			}
		}
		return bt.PreviewConversation(t, cfg.theme, cfg.width, previewHeight,
			bt.WithCardOptions(cardOptions(cfg)...)), nil
	default:
		return "", fmt.Errorf("unknown preview %q", cfg.preview)
	}
}

func cardOptions(cfg config) []bt.CardOption {
	if cfg.markdown {
		return []bt.CardOption{bt.WithMarkdownBody()}
	}
	return nil
}

// openLogger returns a debug logger writing to path. The TUI owns stdout, so
// without a path logs are discarded.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "convo")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
