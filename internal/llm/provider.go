package llm

import "context"

// Provider is a chat-completion backend.
type Provider interface {
	// Generate sends the conversation and returns the assistant's reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one chat turn: a system prompt plus the conversation so far.
type Request struct {
	System   string
	Messages []Message

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero leaves the
	// provider default.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is the assistant's reply.
type Response struct {
	Text  string
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// checkReply turns an empty or truncated-to-nothing reply into a typed error.
func checkReply(req Request, resp *Response) (*Response, error) {
	if resp.Text != "" {
		return resp, nil
	}
	if resp.StopReason == "max_tokens" {
		return nil, &ErrMaxTokensExceeded{MaxTokens: req.MaxTokens}
	}
	return nil, &ErrInvalidResponse{Err: errEmptyReply}
}
