package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/edulens/visual-explainer/internal/repo"
	"github.com/edulens/visual-explainer/pkg/logger"
)

type RetentionUseCase struct {
	blobRepo     repo.ArtifactBlobRepo
	metadataRepo repo.ArtifactMetadataRepo

	window time.Duration

	logger logger.Interface
}

func New(
	blobRepo repo.ArtifactBlobRepo,
	metadataRepo repo.ArtifactMetadataRepo,
	window time.Duration,
	l logger.Interface,
) *RetentionUseCase {
	return &RetentionUseCase{
		blobRepo:     blobRepo,
		metadataRepo: metadataRepo,
		window:       window,
		logger:       l,
	}
}

// Sweep deletes every artifact older than the retention window: first
// the blob objects (logging and continuing on individual failures, a
// missing object is not an error), then the rows in one batch. No
// retries inside a run; the next scheduled run picks up stragglers.
func (uc *RetentionUseCase) Sweep(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-uc.window)

	refs, err := uc.metadataRepo.ListOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("RetentionUseCase - Sweep - uc.metadataRepo.ListOlderThan: %w", err)
	}
	if len(refs) == 0 {
		return 0, nil
	}

	for _, ref := range refs {
		key, ok := uc.blobRepo.KeyFromURL(ref.ImageURL)
		if !ok {
			// hosted remotely or stored inline, no blob of ours to delete
			continue
		}

		if err := uc.blobRepo.Delete(ctx, key); err != nil {
			uc.logger.Warn("failed to delete blob, key=%s, error=%v", key, err)
		}
	}

	count, err := uc.metadataRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("RetentionUseCase - Sweep - uc.metadataRepo.DeleteOlderThan: %w", err)
	}

	if count > 0 {
		uc.logger.Info("deleted expired artifacts, count = %d", count)
	}

	return count, nil
}
