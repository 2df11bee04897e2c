package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	convoyaml "github.com/fwojciec/convo/yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	previewCard         = "card"
	previewConversation = "conversation"
)

// envConfig holds defaults read from the environment. Flags override them.
type envConfig struct {
	Theme    string `envconfig:"CONVO_THEME" default:"light"`
	Markdown bool   `envconfig:"CONVO_MARKDOWN" default:"false"`
	Messages string `envconfig:"CONVO_MESSAGES"`
	LogFile  string `envconfig:"CONVO_LOG_FILE"`
	Width    int    `envconfig:"CONVO_WIDTH" default:"60"`
}

type config struct {
	theme        convo.Theme
	markdown     bool
	messages     string
	conversation bool
	preview      string
	logFile      string
	width        int
}

// loadEnv reads CONVO_* variables, after loading a .env file from the
// working directory when one exists.
func loadEnv() (envConfig, error) {
	_ = godotenv.Load()
	var env envConfig
	if err := envconfig.Process("", &env); err != nil {
		return envConfig{}, fmt.Errorf("environment: %w", err)
	}
	return env, nil
}

func parseFlags(args []string, env envConfig) (config, error) {
	fs := flag.NewFlagSet("convo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		themeName    = fs.String("theme", env.Theme, "Colour theme: light, dark")
		markdown     = fs.Bool("markdown", env.Markdown, "Render message bodies as markdown")
		messages     = fs.String("messages", env.Messages, "Path to a transcript (.json, .yaml, .yml)")
		conversation = fs.Bool("conversation", false, "Show the built-in sample conversation")
		preview      = fs.String("preview", "", "Print a static preview and exit: card, conversation")
		logFile      = fs.String("log-file", env.LogFile, "Write debug logs to this file")
		width        = fs.Int("width", env.Width, "Preview width in columns")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config{}, fmt.Errorf("usage: convo [-conversation] [-messages path] [-theme light|dark] [-markdown] [-preview card|conversation] [-width n] [-log-file path]")
		}
		return config{}, err
	}

	theme, err := convo.ThemeByName(*themeName)
	if err != nil {
		return config{}, err
	}
	switch *preview {
	case "", previewCard, previewConversation:
	default:
		return config{}, fmt.Errorf("unknown preview %q: want %s or %s", *preview, previewCard, previewConversation)
	}
	if *width <= 0 {
		return config{}, fmt.Errorf("width must be positive, got %d", *width)
	}

	return config{
		theme:        theme,
		markdown:     *markdown,
		messages:     *messages,
		conversation: *conversation,
		preview:      *preview,
		logFile:      *logFile,
		width:        *width,
	}, nil
}

// loadTranscript reads a transcript, choosing the codec by file extension.
func loadTranscript(path string) (convo.Transcript, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return convojson.Load(path)
	case ".yaml", ".yml":
		return convoyaml.Load(path)
	default:
		return convo.Transcript{}, fmt.Errorf("%s: %w", path, convo.ErrUnsupportedFormat)
	}
}
