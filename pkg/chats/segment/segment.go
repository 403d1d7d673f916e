// Package segment defines the tagged content-segment variants that make up
// LLM messages and responses.
package segment

// Segment is one element of a message's ordered content sequence.
// Every variant reports its wire-level kind tag.
type Segment interface {
	SegmentKind() string
}

// Text is a plain text segment. This is the only kind the runner prints.
type Text struct {
	Text string
}

func (t Text) SegmentKind() string { return "text" }

// Thinking is an extended-thinking segment emitted by reasoning models.
type Thinking struct {
	Thinking string
}

func (t Thinking) SegmentKind() string { return "thinking" }

// ToolUse is the model's request to invoke a tool. Input holds the raw JSON
// arguments to avoid unnecessary deserialization.
type ToolUse struct {
	ID    string
	Name  string
	Input string
}

func (tu ToolUse) SegmentKind() string { return "tool_use" }

// Unknown preserves a segment of a kind this client does not model, so
// response decoding stays exhaustive instead of silently dropping data.
type Unknown struct {
	Type string
}

func (u Unknown) SegmentKind() string { return u.Type }
