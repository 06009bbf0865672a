package visual

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/edulens/visual-explainer/internal/dto"
	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/internal/repo"
	"github.com/edulens/visual-explainer/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type VisualUseCase struct {
	providers []infrastructure.ImageProvider
	explainer infrastructure.Explainer // nil when no credential is configured

	blobRepo     repo.ArtifactBlobRepo
	metadataRepo repo.ArtifactMetadataRepo

	attemptTimeout time.Duration

	logger logger.Interface
}

func New(
	providers []infrastructure.ImageProvider,
	explainer infrastructure.Explainer,
	blobRepo repo.ArtifactBlobRepo,
	metadataRepo repo.ArtifactMetadataRepo,
	attemptTimeout time.Duration,
	l logger.Interface,
) *VisualUseCase {
	return &VisualUseCase{
		providers:      providers,
		explainer:      explainer,
		blobRepo:       blobRepo,
		metadataRepo:   metadataRepo,
		attemptTimeout: attemptTimeout,
		logger:         l,
	}
}

// Generate runs the full pipeline: compose prompts, resolve an image
// through the provider chain, produce the explanation, persist the
// artifact. The image is the primary deliverable; explanation and
// persistence failures degrade instead of failing the request.
func (uc *VisualUseCase) Generate(ctx context.Context, req dto.GenerateVisualRequest) (*entity.Artifact, error) {
	imagePrompt := ComposeImagePrompt(req.Subject, req.Topic, req.Description)
	systemPrompt, userPrompt := ComposeExplanationPrompts(req.Subject, req.Topic, req.Description)

	var (
		result       *entity.ImageResult
		providerName string
		explanation  string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		result, providerName, err = uc.resolveImage(gctx, imagePrompt)
		return err
	})

	g.Go(func() error {
		// falls back internally, never fails the group
		explanation = uc.explain(gctx, req.Subject, req.Topic, systemPrompt, userPrompt)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("VisualUseCase - Generate: %w", err)
	}

	artifact := &entity.Artifact{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Subject:     req.Subject,
		Topic:       req.Topic,
		Description: req.Description,
		Explanation: explanation,
		Provider:    providerName,
		Width:       result.Width,
		Height:      result.Height,
		CreatedAt:   time.Now(),
	}
	artifact.ImageURL = uc.resolveReference(ctx, artifact.ID, result)

	if err := uc.metadataRepo.Create(ctx, artifact); err != nil {
		// best effort: the in-memory result is authoritative for the response
		uc.logger.Error(err, "VisualUseCase - Generate - uc.metadataRepo.Create")
	}

	return artifact, nil
}

func (uc *VisualUseCase) GetArtifact(ctx context.Context, id uuid.UUID) (*entity.Artifact, error) {
	artifact, err := uc.metadataRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("VisualUseCase - GetArtifact - uc.metadataRepo.GetByID: %w", err)
	}

	return artifact, nil
}

// resolveReference turns a normalized image result into a stable
// locator. Hosted URLs pass through unchanged; inline bytes are
// uploaded to the blob store, degrading to a data URI when the upload
// fails.
func (uc *VisualUseCase) resolveReference(ctx context.Context, id uuid.UUID, result *entity.ImageResult) string {
	if !result.Inline() {
		return result.URL
	}

	key := fmt.Sprintf("generated/%s%s", id, extensionFor(result.MimeType))

	url, err := uc.blobRepo.UploadBytes(ctx, key, result.Data, result.MimeType)
	if err != nil {
		uc.logger.Warn("blob upload failed, keeping inline image, key=%s, error=%v", key, err)
		return dataURI(result)
	}

	return url
}

func (uc *VisualUseCase) explain(ctx context.Context, subject, topic, systemPrompt, userPrompt string) string {
	if uc.explainer == nil {
		return fallbackExplanation(subject, topic)
	}

	text, err := uc.explainer.Explain(ctx, systemPrompt, userPrompt)
	if err != nil {
		uc.logger.Warn("explanation generation failed, using fallback, error=%v", err)
		return fallbackExplanation(subject, topic)
	}

	return text
}

func fallbackExplanation(subject, topic string) string {
	return fmt.Sprintf("This image shows an educational illustration about %s in the context of %s.", topic, subject)
}

func dataURI(r *entity.ImageResult) string {
	return fmt.Sprintf("data:%s;base64,%s", r.MimeType, base64.StdEncoding.EncodeToString(r.Data))
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
