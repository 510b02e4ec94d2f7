package providers

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeGateway serves generation requests through the Anthropic Messages API.
type ClaudeGateway struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewClaudeGateway(apiKey, model string) (*ClaudeGateway, error) {
	if !ValidAPIKey(apiKey, ClaudeProviderName) {
		return nil, fmt.Errorf("anthropic API key is missing, a placeholder, or malformed")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &ClaudeGateway{
		client: &client,
		model:  anthropic.Model(model),
	}, nil
}

func (g *ClaudeGateway) Name() string {
	return ClaudeProviderName
}

func (g *ClaudeGateway) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	response, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       g.model,
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: ClaudeProviderName, Err: err}
	}

	content := ""
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += block.Text
		}
	}

	if content == "" {
		return "", &ProviderError{Provider: ClaudeProviderName, Err: fmt.Errorf("empty completion from model %s", g.model)}
	}

	return content, nil
}
