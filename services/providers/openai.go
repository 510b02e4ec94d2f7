package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIGateway serves generation requests through the OpenAI chat completions
// API via langchaingo.
type OpenAIGateway struct {
	llm llms.Model
}

func NewOpenAIGateway(apiKey, model string) (*OpenAIGateway, error) {
	if !ValidAPIKey(apiKey, OpenAIProviderName) {
		return nil, fmt.Errorf("openai API key is missing, a placeholder, or malformed")
	}

	llm, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIGateway{llm: llm}, nil
}

func (g *OpenAIGateway) Name() string {
	return OpenAIProviderName
}

func (g *OpenAIGateway) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", &ProviderError{Provider: OpenAIProviderName, Err: err}
	}

	return strings.TrimSpace(completion), nil
}
