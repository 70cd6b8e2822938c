package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/uxlab/internal/store"
)

// offlineReply is what the mock provider says when no canned reply is queued.
const offlineReply = "I'm running in offline mock mode, so I can't look anything up. " +
	"Try describing how the principle applies to a screen you are building."

// NewProvider builds the configured provider wrapped as
// caller → retry → logging → base. eventRepo may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		mock := NewMockProvider()
		mock.Fallback = offlineReply
		base = mock
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	return WithRetry(logged, cfg.Retry, logger), nil
}
