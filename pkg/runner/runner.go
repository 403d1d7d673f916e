// Package runner executes one prompt against a hosted model and prints the
// first text segment of the reply.
package runner

import (
	"context"
	"fmt"
	"io"

	"askonce/pkg/anthropic"
	"askonce/pkg/chats/message"
	"askonce/pkg/chats/role"
	"askonce/pkg/chats/segment"
)

// Completer sends a conversation to a hosted model and returns its response.
// *anthropic.Client satisfies this.
type Completer interface {
	Complete(ctx context.Context, msgs []message.Message) (anthropic.Response, error)
}

// Runner issues a single completion request and applies the print policy:
// the first response segment goes to Out verbatim if it is text, otherwise
// a one-line note goes to Log and Out stays untouched.
type Runner struct {
	Completer Completer
	Out       io.Writer // Destination for the reply text (stdout in the CLI).
	Log       io.Writer // Destination for diagnostics (stderr in the CLI).
	Verbose   bool      // Report stop reason and token usage on Log.
}

// New creates a Runner writing replies to out and diagnostics to log.
func New(c Completer, out, log io.Writer) *Runner {
	return &Runner{
		Completer: c,
		Out:       out,
		Log:       log,
	}
}

// Run sends prompt as a single user message and prints the reply's first
// text segment. Completion errors propagate unwrapped; a non-text or empty
// reply is not an error and leaves Out untouched.
func (r *Runner) Run(ctx context.Context, prompt string) error {
	resp, err := r.Completer.Complete(ctx, []message.Message{
		message.NewText(role.User, prompt),
	})
	if err != nil {
		return err
	}

	if r.Verbose {
		fmt.Fprintf(r.Log, "stop_reason=%s input_tokens=%d output_tokens=%d\n",
			resp.StopReason, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	first, ok := resp.Message().First()
	if !ok {
		fmt.Fprintln(r.Log, "model returned no content")
		return nil
	}

	switch s := first.(type) {
	case segment.Text:
		fmt.Fprintln(r.Out, s.Text)
	case segment.Thinking:
		fmt.Fprintln(r.Log, "first content segment is thinking text, nothing to print")
	case segment.ToolUse:
		fmt.Fprintf(r.Log, "first content segment is a %q tool call, nothing to print\n", s.Name)
	default:
		fmt.Fprintf(r.Log, "first content segment has unhandled kind %q, nothing to print\n", s.SegmentKind())
	}

	return nil
}
