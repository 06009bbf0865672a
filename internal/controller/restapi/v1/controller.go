package v1

import (
	"github.com/edulens/visual-explainer/internal/usecase"
	"github.com/edulens/visual-explainer/pkg/logger"
	"github.com/go-playground/validator/v10"
)

type V1 struct {
	visual    usecase.VisualExplanationUseCase
	retention usecase.RetentionUseCase
	validate  *validator.Validate
	logger    logger.Interface
}
