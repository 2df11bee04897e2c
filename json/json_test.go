package json_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	"github.com/fwojciec/convo/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTranscript_RoundTrip(t *testing.T) {
	t.Parallel()

	tr := sample.Conversation()
	data, err := convojson.MarshalTranscript(tr)
	require.NoError(t, err)

	got, err := convojson.UnmarshalTranscript(data)
	require.NoError(t, err)
	assert.Equal(t, tr, got)
}

func TestMarshalTranscript_Format(t *testing.T) {
	t.Parallel()

	tr := convo.Transcript{
		Title:    "Hello",
		Messages: []convo.Message{{Author: "Android", Body: "Jetpack Compose"}},
	}
	data, err := convojson.MarshalTranscript(tr)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": 1,
		"title": "Hello",
		"messages": [{"author": "Android", "body": "Jetpack Compose"}]
	}`, string(data))
}

func TestUnmarshalTranscript(t *testing.T) {
	t.Parallel()

	t.Run("empty body is kept", func(t *testing.T) {
		t.Parallel()
		got, err := convojson.UnmarshalTranscript([]byte(`{"version":1,"messages":[{"author":"a","body":""}]}`))
		require.NoError(t, err)
		assert.Equal(t, []convo.Message{{Author: "a"}}, got.Messages)
	})

	t.Run("missing title is empty", func(t *testing.T) {
		t.Parallel()
		got, err := convojson.UnmarshalTranscript([]byte(`{"version":1,"messages":[]}`))
		require.NoError(t, err)
		assert.Empty(t, got.Title)
		assert.Empty(t, got.Messages)
	})

	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing body",
			data:    `{"version":1,"messages":[{"author":"a"}]}`,
			wantErr: convo.ErrValidation,
			wantMsg: "message 0: body is required",
		},
		{
			name:    "missing author",
			data:    `{"version":1,"messages":[{"author":"a","body":"b"},{"body":"b"}]}`,
			wantErr: convo.ErrValidation,
			wantMsg: "message 1: author is required",
		},
		{
			name:    "empty author",
			data:    `{"version":1,"messages":[{"author":"","body":"b"}]}`,
			wantErr: convo.ErrValidation,
			wantMsg: "message 0",
		},
		{
			name:    "unsupported version",
			data:    `{"version":2,"messages":[]}`,
			wantErr: convo.ErrUnsupportedFormat,
			wantMsg: "envelope version 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := convojson.UnmarshalTranscript([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.UnmarshalTranscript([]byte(`{`))
		assert.ErrorContains(t, err, "unmarshal envelope")
	})
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trip through a file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "dir", "conversation.json")
		tr := sample.Conversation()

		require.NoError(t, convojson.Save(path, tr))
		_, err := os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

		got, err := convojson.Load(path)
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("failed rename removes the temp file", func(t *testing.T) {
		t.Parallel()
		// A non-empty directory at the target makes the rename fail.
		path := filepath.Join(t.TempDir(), "conversation.json")
		require.NoError(t, os.MkdirAll(filepath.Join(path, "occupied"), 0o755))

		err := convojson.Save(path, sample.Conversation())
		require.Error(t, err)
		_, statErr := os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(statErr), "temp file should be cleaned up")
	})
}
