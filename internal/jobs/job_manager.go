package jobs

import (
	"fmt"
	"log/slog"

	"hangar/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingPartsJob *StalePendingPartsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(workOrders ports.WorkOrderRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		stalePendingPartsJob: NewStalePendingPartsJob(workOrders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingPartsJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending parts job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingPartsJob.Stop()
}
