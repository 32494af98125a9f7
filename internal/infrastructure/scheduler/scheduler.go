package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"etsysync/internal/usecase"
	"etsysync/pkg/logger"
)

// Scheduler runs the auto-sync sweep on a cron cadence. The sweep itself
// re-checks which stores are due, so overlapping triggers are harmless.
type Scheduler struct {
	spec        string
	syncUseCase *usecase.SyncUseCase
	cron        *cron.Cron
	entryID     cron.EntryID
}

func New(spec string, syncUseCase *usecase.SyncUseCase) *Scheduler {
	return &Scheduler{
		spec:        spec,
		syncUseCase: syncUseCase,
		cron:        cron.New(),
	}
}

func (s *Scheduler) Start() error {
	id, err := s.cron.AddFunc(s.spec, s.runSweep)
	if err != nil {
		return err
	}

	s.entryID = id
	s.cron.Start()
	logger.Info("Auto-sync scheduler started (spec %q)", s.spec)

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	logger.Info("Auto-sync scheduler stopped")
}

func (s *Scheduler) runSweep() {
	results, err := s.syncUseCase.SyncAllStores(context.Background())
	if err != nil {
		logger.Error("Auto-sync sweep failed: %v", err)
		return
	}

	var synced, skipped, failed int
	for _, result := range results {
		switch {
		case result.Error != "":
			failed++
			logger.Warn("Auto-sync failed for store %s: %s", result.StoreID, result.Error)
		case result.Skipped:
			skipped++
		default:
			synced++
		}
	}

	logger.Info("Auto-sync sweep done: %d synced, %d skipped, %d failed", synced, skipped, failed)
}
