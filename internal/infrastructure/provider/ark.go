package provider

import (
	"context"
	"fmt"

	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/pkg/types/errs"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

// Ark generates images through the Volcengine Ark runtime. Unlike the
// inline providers it returns a hosted URL, so no blob upload is needed
// downstream.
type Ark struct {
	client *arkruntime.Client
	model  string
}

func NewArk(apiKey, arkModel string) *Ark {
	return &Ark{
		client: arkruntime.NewClientWithApiKey(apiKey),
		model:  arkModel,
	}
}

func (p *Ark) Name() string {
	return "ark"
}

func (p *Ark) Generate(ctx context.Context, prompt string) (*entity.ImageResult, error) {
	resp, err := p.client.GenerateImages(ctx, model.GenerateImagesRequest{
		Model:          p.model,
		Prompt:         prompt,
		Size:           volcengine.String("1024x1024"),
		ResponseFormat: volcengine.String(model.GenerateImagesResponseFormatURL),
		Watermark:      volcengine.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("Ark - Generate - p.client.GenerateImages: %w", err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("Ark - Generate: %s - %s", resp.Error.Code, resp.Error.Message)
	}

	if len(resp.Data) == 0 || resp.Data[0].Url == nil || *resp.Data[0].Url == "" {
		return nil, fmt.Errorf("Ark - Generate: %w", errs.ErrNoImagePayload)
	}

	return &entity.ImageResult{
		URL: *resp.Data[0].Url,
	}, nil
}

var _ infrastructure.ImageProvider = (*Ark)(nil)
