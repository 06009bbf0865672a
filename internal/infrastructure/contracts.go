package infrastructure

import (
	"context"

	"github.com/edulens/visual-explainer/internal/entity"
)

type (
	// ImageProvider is one external image generation service behind the
	// uniform try-normalize-or-fail contract. The chain executor never
	// branches on provider identity; a failed Generate simply advances
	// the chain to the next provider.
	ImageProvider interface {
		Name() string
		Generate(ctx context.Context, prompt string) (*entity.ImageResult, error)
	}

	// Explainer produces the written explanation accompanying an image.
	// Failures are recovered by the caller with a static fallback.
	Explainer interface {
		Explain(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	}
)
