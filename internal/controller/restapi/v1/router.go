package v1

import (
	"github.com/edulens/visual-explainer/internal/usecase"
	"github.com/edulens/visual-explainer/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func NewVisualRoutes(apiV1Group fiber.Router, visual usecase.VisualExplanationUseCase, retention usecase.RetentionUseCase, l logger.Interface) {
	r := &V1{visual: visual, retention: retention, validate: validator.New(), logger: l}

	{
		// API
		apiV1Group.Post("/visuals", r.generateVisual)
		apiV1Group.Get("/visuals/:id", r.getVisual)

		// invoked by an external scheduler
		apiV1Group.Post("/retention/sweep", r.sweepArtifacts)
	}
}
