package jobs

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// AbandonedOrdersJob reports orders that were placed but never paid for.
// Runs every minute and flags pending orders older than the configured age
// so staff can follow up; the orders themselves are left untouched.
type AbandonedOrdersJob struct {
	handler        queries.GetAbandonedOrdersQueryHandler
	abandonedAfter time.Duration
	clock          clock.Clock
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewAbandonedOrdersJob creates a job that reports unpaid orders older than
// abandonedAfter. Uses GetAbandonedOrdersQueryHandler to scan the store
// every minute.
func NewAbandonedOrdersJob(
	handler queries.GetAbandonedOrdersQueryHandler,
	abandonedAfter time.Duration,
	clk clock.Clock,
	logger *slog.Logger,
) *AbandonedOrdersJob {
	return &AbandonedOrdersJob{
		handler:        handler,
		abandonedAfter: abandonedAfter,
		clock:          clk,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "abandoned_orders_job"),
	}
}

// Start begins the abandoned order check to run at the top of every minute.
func (j *AbandonedOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cutoff := j.clock.Now().Add(-j.abandonedAfter)
		query, err := queries.NewGetAbandonedOrdersQuery(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned order check failed", "error", err)
			return
		}

		abandoned, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Abandoned order check failed", "error", err)
			return
		}

		if len(abandoned) == 0 {
			return
		}

		// Results are sorted oldest first
		j.logger.WarnContext(ctx, "Orders awaiting payment past the cutoff",
			"count", len(abandoned),
			"oldest_order", abandoned[0].ID.String(),
			"oldest_created_at", abandoned[0].CreatedAt,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order check started (running every minute)")
	return nil
}

// Stop stops the abandoned order check.
func (j *AbandonedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order check stopped")
}
