package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP      HTTP
		Log       Log
		PG        PG
		S3        S3
		Providers Providers
		Explainer Explainer
		Retention Retention
		Swagger   Swagger
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT,required"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX,required"`
		URL     string `env:"PG_URL,required"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT,required"`
		AccessKey      string        `env:"S3_ACCESS_KEY,required"`
		SecretKey      string        `env:"S3_SECRET_KEY,required"`
		Bucket         string        `env:"S3_BUCKET,required"`
		PublicBaseURL  string        `env:"S3_PUBLIC_BASE_URL,required"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	// Providers lists every supported image provider with its credential.
	// A provider whose key is empty is skipped at wiring time and never
	// tried by the chain.
	Providers struct {
		Order          []string      `env:"IMAGE_PROVIDER_ORDER" envDefault:"openai,gemini,ark"`
		AttemptTimeout time.Duration `env:"IMAGE_PROVIDER_ATTEMPT_TIMEOUT" envDefault:"60s"`

		OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
		OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
		OpenAIImageModel string `env:"OPENAI_IMAGE_MODEL" envDefault:"gpt-image-1"`

		GeminiAPIKey     string `env:"GEMINI_API_KEY"`
		GeminiImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"imagen-3.0-generate-002"`

		ArkAPIKey     string `env:"ARK_API_KEY"`
		ArkImageModel string `env:"ARK_IMAGE_MODEL" envDefault:"doubao-seedream-4-0-250828"`
	}

	Explainer struct {
		Model       string  `env:"EXPLAINER_MODEL" envDefault:"gpt-4o-mini"`
		MaxTokens   int     `env:"EXPLAINER_MAX_TOKENS" envDefault:"1500"`
		Temperature float32 `env:"EXPLAINER_TEMPERATURE" envDefault:"0.7"`
	}

	Retention struct {
		Window          time.Duration `env:"RETENTION_WINDOW" envDefault:"48h"`
		SweepInterval   time.Duration `env:"RETENTION_SWEEP_INTERVAL" envDefault:"24h"`
		SweepTimeout    time.Duration `env:"RETENTION_SWEEP_TIMEOUT" envDefault:"5m"`
		ShutdownTimeout time.Duration `env:"RETENTION_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
