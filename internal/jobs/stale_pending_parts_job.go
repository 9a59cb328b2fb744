package jobs

import (
	"context"
	"log/slog"

	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StalePendingPartsJob surfaces work orders stuck waiting on parts.
// Runs every hour and writes one log line per waiting order so the shop can
// chase suppliers before aircraft sit on the ramp longer than they have to.
type StalePendingPartsJob struct {
	workOrders ports.WorkOrderRepository
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStalePendingPartsJob creates a new job reporting on waiting work orders.
func NewStalePendingPartsJob(workOrders ports.WorkOrderRepository, logger *slog.Logger) *StalePendingPartsJob {
	return &StalePendingPartsJob{
		workOrders: workOrders,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_pending_parts_job"),
	}
}

// Start begins the job to run at the top of every hour.
func (j *StalePendingPartsJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		waiting, err := j.workOrders.GetAllInStatus(ctx, workorder.PendingParts)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale pending parts job failed", "error", err)
			return
		}

		if len(waiting) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Work orders waiting on parts", "count", len(waiting))
		for _, wo := range waiting {
			j.logger.InfoContext(ctx, "Waiting on parts",
				"workOrderId", wo.ID().String(),
				"number", wo.Number().String(),
				"shopId", wo.ShopID().String(),
				"createdAt", wo.CreatedAt(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending parts job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *StalePendingPartsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending parts job stopped")
}
