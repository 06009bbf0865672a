package restapi

import (
	"github.com/edulens/visual-explainer/config"
	v1 "github.com/edulens/visual-explainer/internal/controller/restapi/v1"
	"github.com/edulens/visual-explainer/internal/usecase"
	"github.com/edulens/visual-explainer/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Visual Explainer
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, visual usecase.VisualExplanationUseCase, retention usecase.RetentionUseCase, l logger.Interface) {
	// the browser client is served from a different origin
	app.Use(cors.New())

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewVisualRoutes(apiV1Group, visual, retention, l)
	}
}
