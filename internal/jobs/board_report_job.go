package jobs

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardReportJob reports the barista workload at a steady cadence.
// Runs every thirty seconds and logs how many orders sit paid, preparing
// and ready so queue pressure is visible without querying the API.
type BoardReportJob struct {
	handler queries.GetBaristaBoardQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBoardReportJob creates a job that logs the barista board.
// Uses GetBaristaBoardQueryHandler to count active orders per stage.
func NewBoardReportJob(handler queries.GetBaristaBoardQueryHandler, logger *slog.Logger) *BoardReportJob {
	return &BoardReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "board_report_job"),
	}
}

// Start begins the board report to run every thirty seconds.
func (j *BoardReportJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		board, err := j.handler.Handle(ctx, queries.NewGetBaristaBoardQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Board report failed", "error", err)
			return
		}

		// An empty board is not reported
		if board.PaidCount+board.PreparingCount+board.ReadyCount == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Barista board",
			"paid", board.PaidCount,
			"preparing", board.PreparingCount,
			"ready", board.ReadyCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board report started (running every 30 seconds)")
	return nil
}

// Stop stops the board report.
func (j *BoardReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board report stopped")
}
