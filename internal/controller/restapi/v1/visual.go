package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/edulens/visual-explainer/internal/controller/restapi/v1/response"
	"github.com/edulens/visual-explainer/internal/dto"
	"github.com/edulens/visual-explainer/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// @Summary  	Generate a visual explanation
// @Description Resolves an image through the provider chain, generates an explanation, persists the artifact
// @Tags 		visuals
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.GenerateVisualRequest true "Generation request"
// @Success 	200 {object} response.VisualExplanation
// @Failure 	400 {object} response.Error "Missing required fields"
// @Failure 	500 {object} response.Error "All providers failed or internal error"
// @Router 		/v1/visuals [post]
func (r *V1) generateVisual(ctx *fiber.Ctx) error {
	var req dto.GenerateVisualRequest

	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	req.Normalize()

	if err := r.validate.Struct(req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "subject, topic and user_id are required")
	}

	artifact, err := r.visual.Generate(ctx.UserContext(), req)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - generateVisual")

		if errors.Is(err, errs.ErrAllProvidersFailed) {
			return errorResponse(ctx, http.StatusInternalServerError,
				"all image generation services failed or are unavailable")
		}

		return errorResponse(ctx, http.StatusInternalServerError, "image generation problems")
	}

	return ctx.Status(http.StatusOK).JSON(response.VisualExplanation{
		ID:          artifact.ID.String(),
		Image:       artifact.ImageURL,
		Explanation: artifact.Explanation,
		Topic:       artifact.Topic,
		Subject:     artifact.Subject,
	})
}

// @Summary 	Get a generated artifact
// @Description Reads one persisted artifact by id
// @Tags 		visuals
// @Produce 	json
// @Param 		id path string true "Artifact ID(uuid)"
// @Success 	200 {object} response.Artifact
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Artifact not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/visuals/{id} [get]
func (r *V1) getVisual(ctx *fiber.Ctx) error {
	idStr := ctx.Params("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	artifact, err := r.visual.GetArtifact(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "artifact not found")
		}
		r.logger.Error(err, "restapi - v1 - getVisual")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(response.Artifact{
		ID:          artifact.ID.String(),
		UserID:      artifact.UserID,
		Subject:     artifact.Subject,
		Topic:       artifact.Topic,
		Description: artifact.Description,
		Image:       artifact.ImageURL,
		Explanation: artifact.Explanation,
		Provider:    artifact.Provider,
		Width:       artifact.Width,
		Height:      artifact.Height,
		CreatedAt:   artifact.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// @Summary 	Sweep expired artifacts
// @Description Deletes artifacts older than the retention window (blob objects plus rows)
// @Tags 		retention
// @Produce 	plain
// @Success 	200 {string} string "deleted N expired artifacts"
// @Failure 	500 {string} string "retention sweep failed"
// @Router 		/v1/retention/sweep [post]
func (r *V1) sweepArtifacts(ctx *fiber.Ctx) error {
	count, err := r.retention.Sweep(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - sweepArtifacts")

		return ctx.Status(http.StatusInternalServerError).SendString("retention sweep failed")
	}

	return ctx.SendString(fmt.Sprintf("deleted %d expired artifacts", count))
}
