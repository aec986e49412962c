package jobs

import (
	"context"
	"log/slog"
	"time"

	"chefbook/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob periodically closes booking requests whose acceptance window
// lapsed without a chef decision. The sweep re-derives overdueness from each
// order's stored deadline, so a missed run or a restart only delays the
// expiry, never loses it.
type OrderExpiryJob struct {
	handler commands.ExpireOverdueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpiryJob creates a job that sweeps overdue orders once a minute.
func NewOrderExpiryJob(handler commands.ExpireOverdueOrdersCommandHandler, logger *slog.Logger) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiry_job"),
	}
}

// Start begins the expiry sweep on a one-minute schedule.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireOverdueOrdersCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
