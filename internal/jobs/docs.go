// Package jobs provides scheduled background tasks for the shop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations outside the request path.
//
// # Available Jobs
//
// 1. StalePendingPartsJob - Runs hourly to log work orders waiting on parts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(workOrderRepository, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
