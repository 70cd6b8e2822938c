package llm

import (
	"errors"
	"fmt"
	"time"
)

var errEmptyReply = errors.New("empty reply")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered with nothing usable.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the reply was cut off by MaxTokens before
// any usable text was produced.
type ErrMaxTokensExceeded struct {
	MaxTokens int
}

func (e *ErrMaxTokensExceeded) Error() string {
	if e.MaxTokens > 0 {
		return fmt.Sprintf("LLM response truncated: max tokens (%d) exceeded", e.MaxTokens)
	}
	return "LLM response truncated: max tokens exceeded"
}
