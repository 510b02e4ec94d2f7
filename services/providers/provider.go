package providers

import (
	"context"
	"fmt"
)

const (
	ClaudeProviderName = "claude"
	OpenAIProviderName = "openai"
)

// Gateway wraps one external generation backend. A call either returns the
// complete raw text reply or fails with a *ProviderError; there is no partial
// success.
type Gateway interface {
	Name() string
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// ProviderError reports a single-gateway failure (auth, network, rate limit,
// malformed request). It is always recoverable by moving to the next gateway.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
