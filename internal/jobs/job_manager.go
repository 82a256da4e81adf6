package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/pkg/clock"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	abandonedOrdersJob *AbandonedOrdersJob
	boardReportJob     *BoardReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	abandonedOrdersHandler queries.GetAbandonedOrdersQueryHandler,
	baristaBoardHandler queries.GetBaristaBoardQueryHandler,
	abandonedAfter time.Duration,
	clk clock.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		abandonedOrdersJob: NewAbandonedOrdersJob(abandonedOrdersHandler, abandonedAfter, clk, logger),
		boardReportJob:     NewBoardReportJob(baristaBoardHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.abandonedOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start abandoned orders job: %w", err)
	}

	if err := jm.boardReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.abandonedOrdersJob.Stop()
		return fmt.Errorf("failed to start board report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.boardReportJob.Stop()
	jm.abandonedOrdersJob.Stop()
}
