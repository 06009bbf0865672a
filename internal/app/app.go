package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/edulens/visual-explainer/config"
	"github.com/edulens/visual-explainer/internal/controller/restapi"
	sweeper "github.com/edulens/visual-explainer/internal/controller/worker/retention"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/internal/infrastructure/explainer"
	"github.com/edulens/visual-explainer/internal/infrastructure/provider"
	"github.com/edulens/visual-explainer/internal/repo/persistent"
	"github.com/edulens/visual-explainer/internal/usecase/retention"
	"github.com/edulens/visual-explainer/internal/usecase/visual"
	"github.com/edulens/visual-explainer/pkg/httpserver"
	"github.com/edulens/visual-explainer/pkg/logger"
	"github.com/edulens/visual-explainer/pkg/postgres"
	"github.com/edulens/visual-explainer/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	blobRepo := persistent.NewArtifactBlobRepo(s3c, cfg.S3.Bucket, cfg.S3.PublicBaseURL)
	metadataRepo := persistent.NewArtifactMetadataRepo(pg)

	// Image provider chain, in configured priority order
	providers := buildProviders(ctx, cfg, l)

	// Explanation generator; the use-case falls back to template text
	// when none is configured
	var exp infrastructure.Explainer
	if cfg.Providers.OpenAIAPIKey != "" {
		exp = explainer.NewOpenAI(
			cfg.Providers.OpenAIAPIKey,
			cfg.Providers.OpenAIBaseURL,
			cfg.Explainer.Model,
			cfg.Explainer.MaxTokens,
			cfg.Explainer.Temperature,
		)
	} else {
		l.Warn("no explainer credential configured, explanations will use the fallback template")
	}

	// Use-Case

	visualUseCase := visual.New(
		providers,
		exp,
		blobRepo,
		metadataRepo,
		cfg.Providers.AttemptTimeout,
		l,
	)

	retentionUseCase := retention.New(
		blobRepo,
		metadataRepo,
		cfg.Retention.Window,
		l,
	)

	// Retention Sweeper Worker
	retentionSweeper := sweeper.New(
		retentionUseCase,
		l,
		cfg.Retention.SweepInterval,
		cfg.Retention.SweepTimeout,
	)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, visualUseCase, retentionUseCase, l)

	// Start Components
	err = retentionSweeper.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - retentionSweeper.Start: %w", err))
	}
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	swShutdownCtx, swShutdownCancel := context.WithTimeout(ctx, cfg.Retention.ShutdownTimeout)
	defer swShutdownCancel()
	err = retentionSweeper.Shutdown(swShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - retentionSweeper.Shutdown: %w", err))
	}
}

// buildProviders constructs the chain from config. A provider without a
// credential is skipped here, so the chain only ever iterates providers
// that can actually be tried.
func buildProviders(ctx context.Context, cfg *config.Config, l logger.Interface) []infrastructure.ImageProvider {
	var providers []infrastructure.ImageProvider

	for _, name := range cfg.Providers.Order {
		switch name {
		case "openai":
			if cfg.Providers.OpenAIAPIKey == "" {
				l.Warn("image provider has no credential, skipping, provider=openai")
				continue
			}
			providers = append(providers, provider.NewOpenAI(
				cfg.Providers.OpenAIAPIKey,
				cfg.Providers.OpenAIBaseURL,
				cfg.Providers.OpenAIImageModel,
			))
		case "gemini":
			if cfg.Providers.GeminiAPIKey == "" {
				l.Warn("image provider has no credential, skipping, provider=gemini")
				continue
			}
			gp, err := provider.NewGemini(ctx, cfg.Providers.GeminiAPIKey, cfg.Providers.GeminiImageModel)
			if err != nil {
				l.Error(err, "app - buildProviders - provider.NewGemini")
				continue
			}
			providers = append(providers, gp)
		case "ark":
			if cfg.Providers.ArkAPIKey == "" {
				l.Warn("image provider has no credential, skipping, provider=ark")
				continue
			}
			providers = append(providers, provider.NewArk(
				cfg.Providers.ArkAPIKey,
				cfg.Providers.ArkImageModel,
			))
		default:
			l.Warn("unknown image provider in order, provider=%s", name)
		}
	}

	if len(providers) == 0 {
		l.Warn("no image providers configured, every generation request will fail")
	}

	return providers
}
