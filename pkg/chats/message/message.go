// Package message defines the Message value type used in Messages API
// conversations.
package message

import (
	"strings"

	"askonce/pkg/chats/role"
	"askonce/pkg/chats/segment"
)

// Message is a single conversation message: a role plus an ordered sequence
// of content segments. It is a value type that copies cheaply and is never
// mutated after construction.
type Message struct {
	Role     role.Role
	Segments []segment.Segment
}

// New creates a message with the given role and content segments.
func New(r role.Role, segs ...segment.Segment) Message {
	return Message{
		Role:     r,
		Segments: segs,
	}
}

// NewText creates a message with a single Text segment.
func NewText(r role.Role, text string) Message {
	return New(r, segment.Text{Text: text})
}

// Text concatenates the text of all Text segments in the message.
func (m Message) Text() string {
	var b strings.Builder
	for _, s := range m.Segments {
		if t, ok := s.(segment.Text); ok {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// First returns the first segment and true, or nil and false when the
// message has no segments.
func (m Message) First() (segment.Segment, bool) {
	if len(m.Segments) == 0 {
		return nil, false
	}
	return m.Segments[0], true
}
