package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stuckOrderSweepJob *StuckOrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factory and process handler as dependencies to wire
// up the sweep execution.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	processHandler commands.ProcessOrderCommandHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stuckOrderSweepJob: NewStuckOrderSweepJob(uowFactory, processHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stuckOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stuck order sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stuckOrderSweepJob.Stop()
}
