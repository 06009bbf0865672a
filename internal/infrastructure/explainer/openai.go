package explainer

import (
	"context"
	"fmt"

	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/sashabaranov/go-openai"
)

// OpenAI produces the written explanation through a single chat
// completion call.
type OpenAI struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewOpenAI(apiKey, baseURL, model string, maxTokens int, temperature float32) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (e *OpenAI) Explain(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("Explainer - Explain - e.client.CreateChatCompletion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("Explainer - Explain: empty completion")
	}

	return resp.Choices[0].Message.Content, nil
}

var _ infrastructure.Explainer = (*OpenAI)(nil)
