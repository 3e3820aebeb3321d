package workers

import (
	"context"
	"time"

	"github.com/Rajan16703/gitcompare/internal/repositories"
	"github.com/Rajan16703/gitcompare/pkg/logger"
)

// CleanupWorker periodically prunes anonymous comparisons past the retention
// window, and share links whose comparison is gone
type CleanupWorker struct {
	*BaseWorker
	comparisonRepo *repositories.ComparisonRepository
	shareLinkRepo  *repositories.ShareLinkRepository
	retention      time.Duration
	interval       time.Duration
}

func NewCleanupWorker(workerID string, comparisonRepo *repositories.ComparisonRepository, shareLinkRepo *repositories.ShareLinkRepository, retention, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		BaseWorker:     NewBaseWorker(workerID),
		comparisonRepo: comparisonRepo,
		shareLinkRepo:  shareLinkRepo,
		retention:      retention,
		interval:       interval,
	}
}

// Start begins the cleanup loop. One sweep runs immediately, then one per
// interval until the worker is stopped.
func (w *CleanupWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("Cleanup worker %s started", w.WorkerID)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Cleanup worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Cleanup worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			w.sweep()
		}
	}
}

// sweep runs one retention pass
func (w *CleanupWorker) sweep() {
	cutoff := time.Now().Add(-w.retention)

	pruned, err := w.comparisonRepo.DeleteAnonymousOlderThan(cutoff)
	if err != nil {
		logger.WithError(err).Errorf("Cleanup worker %s failed to prune comparisons", w.WorkerID)
		return
	}

	orphaned, err := w.shareLinkRepo.DeleteOrphaned()
	if err != nil {
		logger.WithError(err).Errorf("Cleanup worker %s failed to prune share links", w.WorkerID)
		return
	}

	if pruned > 0 || orphaned > 0 {
		logger.Infof("Cleanup worker %s pruned %d comparisons, %d share links", w.WorkerID, pruned, orphaned)
	}
}
