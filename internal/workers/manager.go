package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Rajan16703/gitcompare/internal/repositories"
	"github.com/Rajan16703/gitcompare/pkg/config"
	"github.com/Rajan16703/gitcompare/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers        []Worker
	comparisonRepo *repositories.ComparisonRepository
	shareLinkRepo  *repositories.ShareLinkRepository
	wg             sync.WaitGroup
	ctx            context.Context
	cancel         context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(comparisonRepo *repositories.ComparisonRepository, shareLinkRepo *repositories.ShareLinkRepository) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:        make([]Worker, 0),
		comparisonRepo: comparisonRepo,
		shareLinkRepo:  shareLinkRepo,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// StartAll starts all workers based on configuration
func (wm *WorkerManager) StartAll() error {
	retention := time.Duration(config.AppConfig.Retention.ComparisonDays) * 24 * time.Hour
	interval := time.Duration(config.AppConfig.Retention.CleanupInterval) * time.Minute

	worker := NewCleanupWorker("cleanup-1", wm.comparisonRepo, wm.shareLinkRepo, retention, interval)
	wm.workers = append(wm.workers, worker)
	wm.startWorker(worker)

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	wm.cancel()
	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).Errorf("Failed to stop worker %s", worker.GetWorkerID())
		}
	}

	wm.wg.Wait()
	logger.Info("All workers stopped")
	return nil
}

// startWorker runs a worker in its own goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).Errorf("Worker %s exited with error", worker.GetWorkerID())
		}
	}()
}
