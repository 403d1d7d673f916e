// Package anthropic provides a client for the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"askonce/pkg/chats/message"
	"askonce/pkg/chats/role"
	"askonce/pkg/chats/segment"
	"askonce/pkg/llmclient"
	"askonce/pkg/llmclient/usage"
)

const (
	// DefaultBaseURL is the production API endpoint (no trailing slash).
	DefaultBaseURL = "https://api.anthropic.com"

	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"
)

// ErrMissingCredential is returned by New when the API key is empty, so a
// missing credential fails at construction time rather than as a remote 401.
var ErrMissingCredential = errors.New("anthropic: missing API credential")

// Client calls the Anthropic Messages API. Construct it with New.
type Client struct {
	llmclient.Client

	Model     string // Model identifier (e.g. "claude-haiku-4-5-20251001").
	MaxTokens int    // Maximum tokens to generate per response.
	System    string // Optional system prompt.
}

// New creates a Client bound to the given credential and model.
// The baseURL should be DefaultBaseURL unless the endpoint is proxied.
func New(baseURL, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	c := &Client{Model: model}
	c.BaseURL = baseURL
	c.Auth = llmclient.Auth{
		Key:    apiKey,
		Header: "x-api-key",
	}
	c.Headers = map[string]string{
		"anthropic-version": apiVersion,
	}
	c.HeaderParser = ParseRateLimitHeaders
	c.MaxTokens = 4096

	return c, nil
}

// Response is the decoded result of one Messages API call: the assistant's
// ordered content segments plus stop reason and token usage.
type Response struct {
	Segments   []segment.Segment
	StopReason string
	Usage      usage.TokenCount
}

// Message returns the response content as an assistant message.
func (r Response) Message() message.Message {
	return message.New(role.Assistant, r.Segments...)
}

// Complete sends one conversation to the Messages API and returns the
// decoded response. It blocks until the service answers or ctx is done.
func (c *Client) Complete(ctx context.Context, msgs []message.Message) (Response, error) {
	if c.MaxTokens <= 0 {
		return Response{}, fmt.Errorf("anthropic: max tokens must be positive, got %d", c.MaxTokens)
	}
	if err := validateMessages(msgs); err != nil {
		return Response{}, err
	}

	req := c.buildRequest(msgs)

	var resp apiResponse
	if err := c.PostJSON(ctx, messagesPath, req, &resp); err != nil {
		return Response{}, fmt.Errorf("anthropic: %w", err)
	}

	tc := usage.TokenCount{
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}
	c.Usage.Add(tc)

	return Response{
		Segments:   decodeSegments(resp.Content),
		StopReason: resp.StopReason,
		Usage:      tc,
	}, nil
}

// validateMessages enforces the request invariants before anything is sent:
// a non-empty conversation that begins with a user message, all roles known.
func validateMessages(msgs []message.Message) error {
	if len(msgs) == 0 {
		return errors.New("anthropic: conversation is empty")
	}
	if msgs[0].Role != role.User {
		return fmt.Errorf("anthropic: conversation must begin with a %q message, got %q", role.User, msgs[0].Role)
	}
	for i, m := range msgs {
		if !m.Role.Valid() {
			return fmt.Errorf("anthropic: message %d has unknown role %q", i, m.Role)
		}
	}
	return nil
}

// --- request types ---

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string       `json:"role"`
	Content []apiContent `json:"content"`
}

type apiContent struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Thinking string          `json:"thinking,omitempty"`
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name,omitempty"`
	Input    json.RawMessage `json:"input,omitempty"`
}

// --- response types ---

type apiResponse struct {
	Content    []apiContent `json:"content"`
	StopReason string       `json:"stop_reason"`
	Usage      apiUsage     `json:"usage"`
}

type apiUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// --- conversion helpers ---

func (c *Client) buildRequest(msgs []message.Message) apiRequest {
	req := apiRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		System:    c.System,
		Messages:  make([]apiMessage, 0, len(msgs)),
	}

	for _, m := range msgs {
		var blocks []apiContent
		for _, s := range m.Segments {
			if b := segmentToBlock(s); b != nil {
				blocks = append(blocks, *b)
			}
		}
		if len(blocks) == 0 {
			continue
		}
		req.Messages = append(req.Messages, apiMessage{
			Role:    m.Role.String(),
			Content: blocks,
		})
	}

	return req
}

// segmentToBlock converts an outbound segment to its wire form. Only text is
// representable in requests built by this tool; other kinds are skipped.
func segmentToBlock(s segment.Segment) *apiContent {
	switch v := s.(type) {
	case segment.Text:
		return &apiContent{Type: "text", Text: v.Text}
	default:
		return nil
	}
}

// decodeSegments maps every wire content block onto a segment variant.
// Kinds this client does not model become segment.Unknown so nothing is
// silently dropped.
func decodeSegments(blocks []apiContent) []segment.Segment {
	var segs []segment.Segment

	for _, block := range blocks {
		switch block.Type {
		case "text":
			segs = append(segs, segment.Text{Text: block.Text})
		case "thinking":
			segs = append(segs, segment.Thinking{Thinking: block.Thinking})
		case "tool_use":
			input := string(block.Input)
			if input == "" {
				input = "{}"
			}
			segs = append(segs, segment.ToolUse{
				ID:    block.ID,
				Name:  block.Name,
				Input: input,
			})
		default:
			segs = append(segs, segment.Unknown{Type: block.Type})
		}
	}

	return segs
}

// ParseRateLimitHeaders parses Anthropic-specific rate limit headers.
// Headers: anthropic-ratelimit-{requests,tokens}-{remaining,reset}.
func ParseRateLimitHeaders(h http.Header, now time.Time) *llmclient.RateLimitInfo {
	reqRemaining := h.Get("anthropic-ratelimit-requests-remaining")
	tokRemaining := h.Get("anthropic-ratelimit-tokens-remaining")

	if reqRemaining == "" && tokRemaining == "" {
		return nil
	}

	info := &llmclient.RateLimitInfo{}
	if v, err := strconv.Atoi(reqRemaining); err == nil {
		info.RemainingRequests = v
	}
	if v, err := strconv.Atoi(tokRemaining); err == nil {
		info.RemainingTokens = v
	}
	info.RequestsReset = llmclient.ParseResetTime(h.Get("anthropic-ratelimit-requests-reset"), now)
	info.TokensReset = llmclient.ParseResetTime(h.Get("anthropic-ratelimit-tokens-reset"), now)

	return info
}
