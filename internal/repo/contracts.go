package repo

import (
	"context"
	"time"

	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/google/uuid"
)

type (
	// ArtifactBlobRepo stores large binary payloads and hands back
	// stable public URLs. Delete tolerates already-absent objects.
	ArtifactBlobRepo interface {
		UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
		Delete(ctx context.Context, key string) error

		// KeyFromURL reports the object key a previously returned URL
		// refers to. The second result is false for URLs that do not
		// point into this store (remote provider URLs, data URIs).
		KeyFromURL(url string) (string, bool)
	}

	ArtifactMetadataRepo interface {
		Create(ctx context.Context, artifact *entity.Artifact) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Artifact, error)
		ListOlderThan(ctx context.Context, cutoff time.Time) ([]entity.ArtifactRef, error)
		DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	}
)
