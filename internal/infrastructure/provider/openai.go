package provider

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/pkg/types/errs"
	"github.com/sashabaranov/go-openai"
)

// OpenAI generates images through the OpenAI images API. The response
// carries the image as inline base64.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates the provider. baseURL is optional and overrides the
// default endpoint, which also makes the provider testable against a
// local stub server.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAI) Name() string {
	return "openai"
}

func (p *OpenAI) Generate(ctx context.Context, prompt string) (*entity.ImageResult, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Model:          p.model,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI - Generate - p.client.CreateImage: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("OpenAI - Generate: %w", errs.ErrNoImagePayload)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("OpenAI - Generate - base64.StdEncoding.DecodeString: %w", err)
	}

	return &entity.ImageResult{
		Data:     data,
		MimeType: "image/png",
	}, nil
}

var _ infrastructure.ImageProvider = (*OpenAI)(nil)
