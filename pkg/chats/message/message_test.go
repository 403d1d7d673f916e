package message

import (
	"testing"

	"askonce/pkg/chats/role"
	"askonce/pkg/chats/segment"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	msg := New(role.User, segment.Text{Text: "hello"}, segment.Thinking{Thinking: "hmm"})

	assert.Equal(t, role.User, msg.Role)
	assert.Len(t, msg.Segments, 2)
}

func TestNewText(t *testing.T) {
	msg := NewText(role.Assistant, "hi there")

	assert.Equal(t, role.Assistant, msg.Role)
	assert.Len(t, msg.Segments, 1)
	assert.Equal(t, "hi there", msg.Segments[0].(segment.Text).Text)
}

func TestMessage_Text(t *testing.T) {
	msg := New(role.Assistant,
		segment.Text{Text: "hello "},
		segment.ToolUse{ID: "1", Name: "search"},
		segment.Text{Text: "world"},
	)

	assert.Equal(t, "hello world", msg.Text())
}

func TestMessage_Text_NoSegments(t *testing.T) {
	msg := New(role.User)
	assert.Empty(t, msg.Text())
}

func TestMessage_First(t *testing.T) {
	msg := New(role.Assistant, segment.Thinking{Thinking: "hmm"}, segment.Text{Text: "hi"})

	first, ok := msg.First()
	assert.True(t, ok)
	assert.Equal(t, "thinking", first.SegmentKind())
}

func TestMessage_First_Empty(t *testing.T) {
	var msg Message

	first, ok := msg.First()
	assert.False(t, ok)
	assert.Nil(t, first)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, role.User.Valid())
	assert.True(t, role.Assistant.Valid())
	assert.False(t, role.Role("system").Valid())
	assert.False(t, role.Role("").Valid())
}
