package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_SegmentKind(t *testing.T) {
	s := Text{Text: "hello"}
	assert.Equal(t, "text", s.SegmentKind())
}

func TestThinking_SegmentKind(t *testing.T) {
	s := Thinking{Thinking: "let me consider"}
	assert.Equal(t, "thinking", s.SegmentKind())
}

func TestToolUse_SegmentKind(t *testing.T) {
	s := ToolUse{ID: "1", Name: "search", Input: `{"q":"go"}`}
	assert.Equal(t, "tool_use", s.SegmentKind())
}

func TestUnknown_SegmentKind(t *testing.T) {
	s := Unknown{Type: "server_tool_use"}
	assert.Equal(t, "server_tool_use", s.SegmentKind())
}

func TestSegment_Interface(t *testing.T) {
	segs := []Segment{
		Text{Text: "hi"},
		Thinking{Thinking: "hmm"},
		ToolUse{ID: "1"},
		Unknown{Type: "redacted_thinking"},
	}

	expected := []string{"text", "thinking", "tool_use", "redacted_thinking"}
	for i, s := range segs {
		assert.Equal(t, expected[i], s.SegmentKind())
	}
}
