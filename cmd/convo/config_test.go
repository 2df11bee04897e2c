package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	convoyaml "github.com/fwojciec/convo/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEnv() envConfig {
	return envConfig{Theme: "light", Width: 60}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(nil, defaultEnv())
	require.NoError(t, err)
	assert.Equal(t, convo.LightTheme(), cfg.theme)
	assert.False(t, cfg.markdown)
	assert.False(t, cfg.conversation)
	assert.Empty(t, cfg.messages)
	assert.Empty(t, cfg.preview)
	assert.Equal(t, 60, cfg.width)
}

func TestParseFlags_EnvironmentDefaults(t *testing.T) {
	t.Parallel()

	env := envConfig{Theme: "dark", Markdown: true, Messages: "chat.yaml", LogFile: "convo.log", Width: 100}
	cfg, err := parseFlags(nil, env)
	require.NoError(t, err)
	assert.Equal(t, convo.DarkTheme(), cfg.theme)
	assert.True(t, cfg.markdown)
	assert.Equal(t, "chat.yaml", cfg.messages)
	assert.Equal(t, "convo.log", cfg.logFile)
	assert.Equal(t, 100, cfg.width)
}

func TestParseFlags_FlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	env := envConfig{Theme: "dark", Markdown: true, Width: 100}
	cfg, err := parseFlags([]string{"-theme", "light", "-markdown=false", "-width", "40", "-conversation", "-preview", "card"}, env)
	require.NoError(t, err)
	assert.Equal(t, convo.LightTheme(), cfg.theme)
	assert.False(t, cfg.markdown)
	assert.Equal(t, 40, cfg.width)
	assert.True(t, cfg.conversation)
	assert.Equal(t, "card", cfg.preview)
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown theme", []string{"-theme", "sepia"}, "unknown theme"},
		{"unknown preview", []string{"-preview", "grid"}, "unknown preview"},
		{"non-positive width", []string{"-width", "0"}, "width must be positive"},
		{"unknown flag", []string{"-nope"}, "nope"},
		{"help", []string{"-h"}, "usage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseFlags(tt.args, defaultEnv())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CONVO_THEME", "dark")
	t.Setenv("CONVO_MARKDOWN", "true")
	t.Setenv("CONVO_WIDTH", "72")

	env, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, "dark", env.Theme)
	assert.True(t, env.Markdown)
	assert.Equal(t, 72, env.Width)
}

func TestLoadEnv_InvalidValue(t *testing.T) {
	t.Setenv("CONVO_WIDTH", "wide")

	_, err := loadEnv()
	assert.ErrorContains(t, err, "environment")
}

func TestLoadTranscript(t *testing.T) {
	t.Parallel()

	tr := convo.Transcript{
		Title:    "Saved",
		Messages: []convo.Message{{Author: "Android", Body: "Jetpack Compose"}},
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "chat.json")
		require.NoError(t, convojson.Save(path, tr))
		got, err := loadTranscript(path)
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		for _, ext := range []string{".yaml", ".YML"} {
			path := filepath.Join(t.TempDir(), "chat"+ext)
			require.NoError(t, convoyaml.Save(path, tr))
			got, err := loadTranscript(path)
			require.NoError(t, err)
			assert.Equal(t, tr, got)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "chat.txt")
		require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))
		_, err := loadTranscript(path)
		assert.ErrorIs(t, err, convo.ErrUnsupportedFormat)
	})
}
