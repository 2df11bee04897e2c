package convo_test

import (
	"testing"

	"github.com/fwojciec/convo"
	"github.com/stretchr/testify/assert"
)

func TestMessage_StructuralEquality(t *testing.T) {
	t.Parallel()

	a := convo.Message{Author: "Colleague", Body: "Hey, take a look at Jetpack Compose"}
	b := convo.Message{Author: "Colleague", Body: "Hey, take a look at Jetpack Compose"}
	c := convo.Message{Author: "Colleague", Body: "something else"}

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestTranscript_Fields(t *testing.T) {
	t.Parallel()

	tr := convo.Transcript{
		Title:    "Sample",
		Messages: []convo.Message{{Author: "a", Body: "b"}},
	}
	assert.Equal(t, "Sample", tr.Title)
	assert.Len(t, tr.Messages, 1)
}
