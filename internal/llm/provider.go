// Package llm generates in-character replies through an external
// chat-completion API.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingCredential is returned before any network call when no API key
// is configured.
var ErrMissingCredential = errors.New("missing LLM API key: set CLAUDE_API_KEY (or OPENAI_API_KEY with LLM_PROVIDER=openai) and restart the server")

// ErrEmptyReply is returned when the provider responds 2xx but with no
// usable text.
var ErrEmptyReply = errors.New("llm provider returned no text response")

// UpstreamError carries the HTTP status and provider message of a failed
// completion call.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm provider HTTP %d: %s", e.Status, e.Message)
}

// Message is a single role/content pair sent to the provider.
type Message struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// ChatRequest is the input for one completion call.
type ChatRequest struct {
	Model     string
	System    string
	Messages  []Message
	MaxTokens int
}

// ChatResponse is the output of one completion call.
type ChatResponse struct {
	Content string
}

// Provider abstracts a chat-completion backend.
type Provider interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Name() string
}
