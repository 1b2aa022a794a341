package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderNormalizationJob *OrderNormalizationJob
}

func NewJobManager(normalizer OrderNormalizer, normalizeSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderNormalizationJob: NewOrderNormalizationJob(normalizer, normalizeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderNormalizationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order normalization job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderNormalizationJob.Stop()
}
