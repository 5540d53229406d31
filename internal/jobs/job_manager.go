package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	liveKeepaliveJob         *LiveKeepaliveJob
	notificationRetentionJob *NotificationRetentionJob
}

func NewJobManager(
	pinger SessionPinger,
	keepaliveSpec string,
	purger ReadNotificationsPurger,
	retentionDays int,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		liveKeepaliveJob:         NewLiveKeepaliveJob(pinger, keepaliveSpec, logger),
		notificationRetentionJob: NewNotificationRetentionJob(purger, retentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// If one fails to start the jobs already running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.liveKeepaliveJob.Start(); err != nil {
		return fmt.Errorf("failed to start live keepalive job: %w", err)
	}

	if err := jm.notificationRetentionJob.Start(); err != nil {
		jm.liveKeepaliveJob.Stop()
		return fmt.Errorf("failed to start notification retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.notificationRetentionJob.Stop()
	jm.liveKeepaliveJob.Stop()
}
