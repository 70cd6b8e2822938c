package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini",
	// "openrouter" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single chat request including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// envOverrides maps UXLAB_* variables onto config fields.
func envOverrides(cfg *Config) []struct {
	key string
	dst *string
} {
	return []struct {
		key string
		dst *string
	}{
		{"UXLAB_LLM_PROVIDER", &cfg.Provider},
		{"UXLAB_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"UXLAB_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"UXLAB_ANTHROPIC_BASE_URL", &cfg.Anthropic.BaseURL},
		{"UXLAB_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"UXLAB_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"UXLAB_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"UXLAB_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"UXLAB_GEMINI_MODEL", &cfg.Gemini.Model},
		{"UXLAB_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"UXLAB_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
		{"UXLAB_OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL},
	}
}

// ConfigFromEnv builds a Config from UXLAB_* environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for _, o := range envOverrides(&cfg) {
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}
	if t := os.Getenv("UXLAB_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// DiscoverConfig probes the standard API key variables in priority order
// (Anthropic, OpenAI, Gemini, OpenRouter) and returns a Config for the first
// one found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig picks the effective configuration. An explicit
// UXLAB_LLM_PROVIDER wins; otherwise standard keys are discovered. ok is
// false when no provider is configured at all.
func ResolveConfig() (cfg Config, ok bool) {
	if os.Getenv("UXLAB_LLM_PROVIDER") != "" {
		return ConfigFromEnv(), true
	}
	return DiscoverConfig()
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("UXLAB_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("UXLAB_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("UXLAB_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("UXLAB_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
