package jobs

import (
	"context"
	"log/slog"

	"adventure/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultNormalizeSchedule runs the normalization at the top of every minute.
const DefaultNormalizeSchedule = "0 * * * * *"

type OrderNormalizer interface {
	Handle(ctx context.Context, cmd commands.NormalizeOrderCommand) (int, error)
}

// OrderNormalizationJob periodically repairs duplicated item orders.
type OrderNormalizationJob struct {
	handler  OrderNormalizer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderNormalizationJob(handler OrderNormalizer, schedule string, logger *slog.Logger) *OrderNormalizationJob {
	if schedule == "" {
		schedule = DefaultNormalizeSchedule
	}

	return &OrderNormalizationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_normalization_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *OrderNormalizationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order normalization job started", "schedule", j.schedule)
	return nil
}

// Run performs one normalization pass.
func (j *OrderNormalizationJob) Run(ctx context.Context) {
	changed, err := j.handler.Handle(ctx, commands.NewNormalizeOrderCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order normalization job failed", "error", err)
		return
	}

	if changed > 0 {
		j.logger.InfoContext(ctx, "Repaired duplicated item orders", "items", changed)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *OrderNormalizationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order normalization job stopped")
}
