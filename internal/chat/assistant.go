// Package chat implements the UX tutor conversation on top of an LLM
// provider.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/uxlab/internal/llm"
)

const (
	// ConnectionErrorText is appended to the history when a send fails.
	ConnectionErrorText = "⚠️ Connection error. Please try again."

	purpose = "chat"
)

var (
	// ErrEmptyMessage is returned for blank input.
	ErrEmptyMessage = errors.New("chat: empty message")

	// ErrUnavailable is returned when no provider is configured.
	ErrUnavailable = errors.New("chat: no LLM provider configured")
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the visible history.
type Message struct {
	Role    Role
	Content string

	// Failed marks the placeholder written after a provider error. Failed
	// messages are shown but never sent back to the model.
	Failed bool
}

// Config tunes the assistant.
type Config struct {
	MaxTokens   int
	Temperature float64

	// HistoryLimit caps how many past messages are sent with each request.
	HistoryLimit int

	Logger *zap.Logger
}

// DefaultConfig returns the standard tutor settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    600,
		Temperature:  0.7,
		HistoryLimit: 20,
	}
}

// Assistant holds one conversation. It is safe for concurrent use so a
// send can run in a background command while the UI reads History.
type Assistant struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger

	mu      sync.Mutex
	topic   string
	history []Message
}

// New creates an assistant. provider may be nil, in which case Send
// returns ErrUnavailable.
func New(provider llm.Provider, cfg Config) *Assistant {
	def := DefaultConfig()
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = def.HistoryLimit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{provider: provider, cfg: cfg, logger: logger.Named("chat")}
}

// Available reports whether a provider is configured.
func (a *Assistant) Available() bool {
	return a.provider != nil
}

// Topic returns the law currently being discussed.
func (a *Assistant) Topic() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.topic
}

// Open sets the topic. When the conversation is empty and a topic is set,
// a greeting about that topic is added.
func (a *Assistant) Open(topic string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.topic = strings.TrimSpace(topic)
	if len(a.history) == 0 && a.topic != "" {
		a.history = append(a.history, Message{Role: RoleAssistant, Content: Greeting(a.topic)})
	}
}

// Greeting is the opening line for a topic.
func Greeting(topic string) string {
	return fmt.Sprintf("I see you're exploring **%s**! 👋 Want to know how to apply this principle in real-world design? Ask me anything!", topic)
}

// History returns a copy of the conversation.
func (a *Assistant) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Message(nil), a.history...)
}

// Reset clears the conversation and keeps the topic.
func (a *Assistant) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// Send posts text as the user and returns the assistant's reply. On
// provider failure the connection error message is recorded and the error
// is returned wrapped.
func (a *Assistant) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	if a.provider == nil {
		return "", ErrUnavailable
	}

	a.mu.Lock()
	a.history = append(a.history, Message{Role: RoleUser, Content: text})
	req := llm.Request{
		System:      systemPrompt(a.topic),
		Messages:    a.requestMessages(),
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}
	topic := a.topic
	a.mu.Unlock()

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, purpose), req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.history = append(a.history, Message{Role: RoleAssistant, Content: ConnectionErrorText, Failed: true})
		a.logger.Warn("chat send failed", zap.String("topic", topic), zap.Error(err))
		return "", fmt.Errorf("chat: %w", err)
	}
	a.history = append(a.history, Message{Role: RoleAssistant, Content: resp.Text})
	return resp.Text, nil
}

// requestMessages converts the tail of the history into provider messages.
// Failed placeholders are skipped, and the list starts with a user turn as
// some providers require. Callers hold a.mu.
func (a *Assistant) requestMessages() []llm.Message {
	msgs := make([]llm.Message, 0, len(a.history))
	for _, m := range a.history {
		if m.Failed {
			continue
		}
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	if n := a.cfg.HistoryLimit; n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	for len(msgs) > 0 && msgs[0].Role != llm.RoleUser {
		msgs = msgs[1:]
	}
	return msgs
}
