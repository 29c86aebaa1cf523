package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/commands"
)

// DefaultStaleThreshold is how long an order may sit in PROCESSING before the
// sweep considers it stuck.
const DefaultStaleThreshold = 5 * time.Minute

// StuckOrderSweepJob re-drives orders left in PROCESSING beyond the staleness
// threshold. Partially assigned orders get another pass over their unassigned
// items; orders abandoned by a consumer crash get picked up here too.
type StuckOrderSweepJob struct {
	uowFactory     commands.OrderUoWFactory
	processHandler commands.ProcessOrderCommandHandler
	staleThreshold time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewStuckOrderSweepJob creates the sweep job. A non-positive staleThreshold
// falls back to DefaultStaleThreshold.
func NewStuckOrderSweepJob(
	uowFactory commands.OrderUoWFactory,
	processHandler commands.ProcessOrderCommandHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *StuckOrderSweepJob {
	if staleThreshold <= 0 {
		staleThreshold = DefaultStaleThreshold
	}

	return &StuckOrderSweepJob{
		uowFactory:     uowFactory,
		processHandler: processHandler,
		staleThreshold: staleThreshold,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "stuck_order_sweep_job"),
	}
}

// Start begins the sweep job to run every minute.
func (j *StuckOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.Sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stuck order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order sweep job started (running every minute)")
	return nil
}

// Sweep runs one pass: loads every order stuck in PROCESSING and re-drives
// its pipeline. Per-order failures are logged and do not abort the pass.
func (j *StuckOrderSweepJob) Sweep(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.staleThreshold)

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stuck, err := uow.OrderRepository().GetStuckInProcessing(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(stuck) == 0 {
		return nil
	}

	j.logger.InfoContext(ctx, "Re-driving stuck orders", "count", len(stuck))

	for _, aggregate := range stuck {
		cmd, cmdErr := commands.NewProcessOrderCommand(aggregate.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build process command",
				"orderId", aggregate.ID().String(), "error", cmdErr)
			continue
		}

		if _, handleErr := j.processHandler.Handle(ctx, cmd); handleErr != nil {
			j.logger.WarnContext(ctx, "Stuck order re-drive failed",
				"orderId", aggregate.ID().String(), "error", handleErr)
		}
	}

	return nil
}

// Stop stops the sweep job.
func (j *StuckOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order sweep job stopped")
}
