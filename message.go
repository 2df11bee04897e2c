// Package convo holds the domain types of the conversation card sample:
// messages, transcripts and the colour theme the renderers consume.
package convo

// Message is an author label and a body of text. It is a plain value:
// renderers receive it by value and never modify it.
type Message struct {
	Author string `validate:"required"`
	Body   string
}

// Transcript is an ordered list of messages with an optional title. It is
// the unit the json and yaml packages load and save.
type Transcript struct {
	Title    string
	Messages []Message
}
