package jobs

import (
	"context"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// DefaultNotificationRetentionSpec runs the purge daily at 03:00.
	DefaultNotificationRetentionSpec = "0 0 3 * * *"
	DefaultNotificationRetentionDays = 30
)

type ReadNotificationsPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error)
}

// NotificationRetentionJob deletes read notifications older than the
// retention window. Unread ones are kept regardless of age.
type NotificationRetentionJob struct {
	purger    ReadNotificationsPurger
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewNotificationRetentionJob(purger ReadNotificationsPurger, retentionDays int, logger *zap.Logger) *NotificationRetentionJob {
	if retentionDays <= 0 {
		retentionDays = DefaultNotificationRetentionDays
	}
	return &NotificationRetentionJob{
		purger:    purger,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "notification_retention_job")),
	}
}

func (j *NotificationRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(DefaultNotificationRetentionSpec, func() {
		_ = j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Notification retention job started",
		zap.Duration("retention", j.retention))
	return nil
}

// Run purges once and returns the handler error, if any, after logging it.
func (j *NotificationRetentionJob) Run(ctx context.Context) error {
	cmd, err := commands.NewPurgeReadNotificationsCommand(j.now().UTC().Add(-j.retention))
	if err != nil {
		return err
	}

	removed, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Notification retention job failed", zap.Error(err))
		return err
	}

	j.logger.Info("Purged read notifications", zap.Int64("removed", removed))
	return nil
}

func (j *NotificationRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Notification retention job stopped")
}
