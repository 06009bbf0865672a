package provider

import (
	"context"
	"fmt"

	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/pkg/types/errs"
	"google.golang.org/genai"
)

// Gemini generates images through the Imagen models of the Gemini API.
// The response carries raw image bytes.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini - NewGemini - genai.NewClient: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (p *Gemini) Name() string {
	return "gemini"
}

func (p *Gemini) Generate(ctx context.Context, prompt string) (*entity.ImageResult, error) {
	resp, err := p.client.Models.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini - Generate - p.client.Models.GenerateImages: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("Gemini - Generate: %w", errs.ErrNoImagePayload)
	}

	img := resp.GeneratedImages[0].Image

	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &entity.ImageResult{
		Data:     img.ImageBytes,
		MimeType: mimeType,
	}, nil
}

var _ infrastructure.ImageProvider = (*Gemini)(nil)
