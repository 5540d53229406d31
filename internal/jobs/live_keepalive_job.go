package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultLiveKeepaliveSpec pings live sessions every 30 seconds.
const DefaultLiveKeepaliveSpec = "*/30 * * * * *"

type SessionPinger interface {
	PingAll(ctx context.Context) int
}

// LiveKeepaliveJob pings every live session and lets the hub drop the ones
// that no longer answer.
type LiveKeepaliveJob struct {
	pinger SessionPinger
	spec   string
	cron   *cron.Cron
	logger *zap.Logger
}

func NewLiveKeepaliveJob(pinger SessionPinger, spec string, logger *zap.Logger) *LiveKeepaliveJob {
	if spec == "" {
		spec = DefaultLiveKeepaliveSpec
	}
	return &LiveKeepaliveJob{
		pinger: pinger,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With(zap.String("component", "live_keepalive_job")),
	}
}

func (j *LiveKeepaliveJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Live keepalive job started", zap.String("spec", j.spec))
	return nil
}

// Run performs one keepalive round.
func (j *LiveKeepaliveJob) Run(ctx context.Context) {
	if dropped := j.pinger.PingAll(ctx); dropped > 0 {
		j.logger.Info("Dropped unresponsive live sessions", zap.Int("dropped", dropped))
	}
}

func (j *LiveKeepaliveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Live keepalive job stopped")
}
