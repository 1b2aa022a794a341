// Package jobs provides scheduled background tasks of the list service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds-enabled specs) and
// are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(normalizeHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderNormalizationJob renumbers the list 1..N whenever two items share an
// order value, which only happens after manual edits of the store or a
// reorder that named a subset of the ids.
package jobs
