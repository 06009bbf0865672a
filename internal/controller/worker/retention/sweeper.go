package retention

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/edulens/visual-explainer/internal/usecase"
	"github.com/edulens/visual-explainer/pkg/logger"
)

// Sweeper periodically runs the retention sweep in-process, so the
// service keeps its retention contract even without an external
// scheduler hitting the sweep endpoint. Each run is bounded by its own
// timeout; a failed run is only logged, the next tick retries naturally.
type Sweeper struct {
	retention usecase.RetentionUseCase
	logger    logger.Interface

	interval     time.Duration
	sweepTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	started atomic.Bool
}

func New(
	retention usecase.RetentionUseCase,
	l logger.Interface,
	interval time.Duration,
	sweepTimeout time.Duration,
) *Sweeper {
	return &Sweeper{
		retention:    retention,
		logger:       l,
		interval:     interval,
		sweepTimeout: sweepTimeout,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("Sweeper - Start - worker already started")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()

	return nil
}

func (s *Sweeper) sweep() {
	sweepCtx, cancel := context.WithTimeout(s.ctx, s.sweepTimeout)
	defer cancel()

	if _, err := s.retention.Sweep(sweepCtx); err != nil {
		s.logger.Error(err, "Sweeper - sweep - s.retention.Sweep")
	}
}

func (s *Sweeper) Shutdown(ctx context.Context) error {
	if !s.started.Load() {
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})

	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return nil
	}
}
