package visual

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/pkg/types/errs"
)

// resolveImage walks the configured providers in order and returns the
// first normalized result, together with the name of the provider that
// produced it. A failure at one provider never aborts the walk; only
// exhausting every provider is terminal.
func (uc *VisualUseCase) resolveImage(ctx context.Context, prompt string) (*entity.ImageResult, string, error) {
	for _, p := range uc.providers {
		result, err := uc.attempt(ctx, p, prompt)
		if err != nil {
			uc.logger.Warn("image provider failed, provider=%s, error=%v", p.Name(), err)
			continue
		}

		uc.logger.Info("image generated, provider=%s", p.Name())

		return result, p.Name(), nil
	}

	return nil, "", fmt.Errorf("VisualUseCase - resolveImage: %w", errs.ErrAllProvidersFailed)
}

// attempt runs one provider call under its own deadline and normalizes
// the response. A result that is neither a hosted URL nor decodable
// image bytes counts as that provider's failure.
func (uc *VisualUseCase) attempt(ctx context.Context, p infrastructure.ImageProvider, prompt string) (*entity.ImageResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, uc.attemptTimeout)
	defer cancel()

	result, err := p.Generate(attemptCtx, prompt)
	if err != nil {
		return nil, err
	}

	if result == nil || (!result.Inline() && result.URL == "") {
		return nil, errs.ErrNoImagePayload
	}

	if result.Inline() {
		img, err := imaging.Decode(bytes.NewReader(result.Data))
		if err != nil {
			return nil, fmt.Errorf("undecodable image payload: %w", err)
		}

		bounds := img.Bounds()
		result.Width, result.Height = bounds.Dx(), bounds.Dy()
	}

	return result, nil
}
