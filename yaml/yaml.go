// Package yaml reads and writes transcripts as YAML documents with the same
// shape as the JSON envelope:
//
//	version: 1
//	title: Sample conversation
//	messages:
//	  - author: Colleague
//	    body: |
//	      List of Android versions:
//	      Android KitKat (API 19)
package yaml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/convo"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const version = 1

type document struct {
	Version  int          `yaml:"version"`
	Title    string       `yaml:"title,omitempty"`
	Messages []messageDTO `yaml:"messages"`
}

type messageDTO struct {
	Author *string `yaml:"author" validate:"required"`
	Body   *string `yaml:"body" validate:"required"`
}

// MarshalTranscript serializes a Transcript to YAML.
func MarshalTranscript(t convo.Transcript) ([]byte, error) {
	doc := document{
		Version: version,
		Title:   t.Title,
		Messages: lo.Map(t.Messages, func(m convo.Message, _ int) messageDTO {
			return messageDTO{Author: lo.ToPtr(m.Author), Body: lo.ToPtr(m.Body)}
		}),
	}
	return yaml.Marshal(doc)
}

// UnmarshalTranscript deserializes a Transcript from YAML. A missing version
// is read as version 1, since hand-written files often omit it.
func UnmarshalTranscript(data []byte) (convo.Transcript, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return convo.Transcript{}, fmt.Errorf("unmarshal document: %w", err)
	}
	if doc.Version != 0 && doc.Version != version {
		return convo.Transcript{}, fmt.Errorf("document version %d: %w", doc.Version, convo.ErrUnsupportedFormat)
	}
	msgs := make([]convo.Message, len(doc.Messages))
	for i, dto := range doc.Messages {
		if err := convo.ValidateStruct(dto); err != nil {
			return convo.Transcript{}, fmt.Errorf("message %d: %w", i, err)
		}
		msgs[i] = convo.Message{Author: *dto.Author, Body: *dto.Body}
	}
	t := convo.Transcript{Title: doc.Title, Messages: msgs}
	if err := t.Validate(); err != nil {
		return convo.Transcript{}, err
	}
	return t, nil
}

// Save writes a Transcript to a YAML file, creating parent directories as
// needed.
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

// Load reads a Transcript from a YAML file.
func Load(path string) (convo.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return convo.Transcript{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalTranscript(data)
}
