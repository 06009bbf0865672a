package usecase

import (
	"context"

	"github.com/edulens/visual-explainer/internal/dto"
	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/google/uuid"
)

type (
	VisualExplanationUseCase interface {
		Generate(ctx context.Context, req dto.GenerateVisualRequest) (*entity.Artifact, error)
		GetArtifact(ctx context.Context, id uuid.UUID) (*entity.Artifact, error)
	}

	RetentionUseCase interface {
		Sweep(ctx context.Context) (int64, error)
	}
)
