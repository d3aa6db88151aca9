package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// HoldExpiryJob manages the scheduled sweep for expired hub slot
// reservations and inventory holds. Runs every minute so reclaimed capacity
// and stock become available to new selections without operator involvement.
type HoldExpiryJob struct {
	handler commands.ReleaseExpiredHoldsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewHoldExpiryJob creates a new job for releasing expired holds.
// Uses ReleaseExpiredHoldsCommandHandler to sweep both ledgers every minute.
func NewHoldExpiryJob(handler commands.ReleaseExpiredHoldsCommandHandler, logger *slog.Logger) *HoldExpiryJob {
	return &HoldExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "hold_expiry_job"),
	}
}

// Start begins the hold expiry job to run every minute.
func (j *HoldExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseExpiredHoldsCommand(commands.DefaultExpiryBatchSize)

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Hold expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hold expiry job started (running every minute)")
	return nil
}

// Stop stops the hold expiry job.
func (j *HoldExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hold expiry job stopped")
}
