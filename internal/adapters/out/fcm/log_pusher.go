package fcm

import (
	"context"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"

	"go.uber.org/zap"
)

// LogPusher stands in for FCM when no credentials are configured. It logs
// every message and reports it as delivered.
type LogPusher struct {
	logger *zap.Logger
}

func NewLogPusher(logger *zap.Logger) *LogPusher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPusher{logger: logger.With(zap.String("component", "push"))}
}

func (p *LogPusher) PushMulticast(_ context.Context, tokens []string, msg ports.PushMessage) ([]ports.PushResult, error) {
	p.logger.Info("push skipped, no provider configured",
		zap.Int("tokens", len(tokens)),
		zap.String("title", msg.Title),
		zap.Any("data", msg.Data))

	results := make([]ports.PushResult, 0, len(tokens))
	for _, t := range tokens {
		results = append(results, ports.PushResult{Token: t})
	}
	return results, nil
}
