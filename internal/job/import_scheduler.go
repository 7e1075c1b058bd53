// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"question-bank-service/internal/app/service"
	"question-bank-service/pkg/locker"
)

// ImportScheduler runs periodic feed imports with distributed locking
// so only one instance ingests the feeds at a time.
type ImportScheduler struct {
	importService *service.ImportService
	interval      time.Duration
	timeout       time.Duration
	logger        *zap.Logger
	locker        locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ImportConfig holds import scheduler configuration.
type ImportConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewImportScheduler creates an ImportScheduler with distributed
// locking support.
func NewImportScheduler(
	importSvc *service.ImportService,
	cfg ImportConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *ImportScheduler {
	return &ImportScheduler{
		importService: importSvc,
		interval:      cfg.Interval,
		timeout:       cfg.Timeout,
		logger:        logger,
		locker:        locker,
	}
}

// Start begins the background import job.
func (s *ImportScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting import scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *ImportScheduler) Stop() {
	s.logger.Info("stopping import scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("import scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *ImportScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.executeImport()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeImport()
		}
	}
}

// executeImport runs one import cycle under the distributed lock.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for the full interval to prevent duplicate imports
//   - Failure: lock released immediately so another instance can retry
func (s *ImportScheduler) executeImport() {
	const lockKey = "import:scheduler:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is importing, skipping execution")

		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	results := s.importService.ImportAll(ctx)

	totalImported := 0
	feedsFailed := 0

	for _, r := range results {
		if r.Error != nil {
			feedsFailed++
			s.logger.Warn("feed import failed",
				zap.String("feed", r.Feed),
				zap.Error(r.Error),
			)
		} else {
			totalImported += r.Count
		}
	}

	if feedsFailed > 0 {
		// Release the lock immediately on error to allow retry.
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after import error", zap.Error(err))
		}
		s.logger.Info("import completed with errors, lock released for retry",
			zap.Int("total_imported", totalImported),
			zap.Int("feeds_failed", feedsFailed),
		)
	} else {
		// The lock expires naturally after the interval (cooldown).
		s.logger.Info("import completed successfully, lock held for cooldown",
			zap.Int("total_imported", totalImported),
			zap.Duration("cooldown", s.interval),
		)
	}
}
