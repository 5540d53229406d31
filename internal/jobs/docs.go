// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level specs.
//
// # Available Jobs
//
// 1. LiveKeepaliveJob pings every live restaurant session (default every 30s,
// LIVE_PING_SPEC) and drops the ones that fail.
// 2. NotificationRetentionJob deletes read notifications older than
// NOTIFICATION_RETENTION_DAYS once a day.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(hub, cfg.LivePingSpec, purgeHandler, cfg.NotificationRetentionDays, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed start stops the jobs already running. Errors from a single run
// are logged and the schedule continues.
package jobs
