// Package json reads and writes transcripts as versioned JSON envelopes.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/convo"
	"github.com/samber/lo"
)

const version = 1

// envelope is the v1 wire format for a transcript.
type envelope struct {
	Version  int          `json:"version"`
	Title    string       `json:"title,omitempty"`
	Messages []messageDTO `json:"messages"`
}

// messageDTO uses pointers so an absent key can be told apart from an
// empty string.
type messageDTO struct {
	Author *string `json:"author" validate:"required"`
	Body   *string `json:"body" validate:"required"`
}

// MarshalTranscript serializes a Transcript to JSON in v1 envelope format.
func MarshalTranscript(t convo.Transcript) ([]byte, error) {
	env := envelope{
		Version: version,
		Title:   t.Title,
		Messages: lo.Map(t.Messages, func(m convo.Message, _ int) messageDTO {
			return messageDTO{Author: lo.ToPtr(m.Author), Body: lo.ToPtr(m.Body)}
		}),
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalTranscript deserializes a Transcript from JSON in v1 envelope
// format. Every message must carry both keys and a non-empty author.
func UnmarshalTranscript(data []byte) (convo.Transcript, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return convo.Transcript{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != version {
		return convo.Transcript{}, fmt.Errorf("envelope version %d: %w", env.Version, convo.ErrUnsupportedFormat)
	}
	msgs := make([]convo.Message, len(env.Messages))
	for i, dto := range env.Messages {
		if err := convo.ValidateStruct(dto); err != nil {
			return convo.Transcript{}, fmt.Errorf("message %d: %w", i, err)
		}
		msgs[i] = convo.Message{Author: *dto.Author, Body: *dto.Body}
	}
	t := convo.Transcript{Title: env.Title, Messages: msgs}
	if err := t.Validate(); err != nil {
		return convo.Transcript{}, err
	}
	return t, nil
}

// Save writes a Transcript to a JSON file, creating parent directories as
// needed. The file is replaced atomically.
func Save(path string, t convo.Transcript) error {
	data, err := MarshalTranscript(t)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Transcript from a JSON file.
func Load(path string) (convo.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return convo.Transcript{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalTranscript(data)
}
