// Package fanout turns order status changes into notifications.
//
// For every change it writes one notification per recipient to the feed and
// pushes the same text to the recipient's active devices. The work runs on a
// fixed pool of workers behind a bounded queue, so the caller only pays for an
// enqueue. Nothing here is reported back to the caller: failures are logged
// and counted.
package fanout

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/services"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/metrics"

	"go.uber.org/zap"
)

const (
	DefaultWorkers     = 4
	DefaultQueueSize   = 256
	DefaultPushTimeout = 10 * time.Second
)

// ErrClosed is returned by Close when called twice.
var ErrClosed = errors.New("fanout is closed")

type Config struct {
	Workers     int
	QueueSize   int
	PushTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.PushTimeout <= 0 {
		c.PushTimeout = DefaultPushTimeout
	}
	return c
}

type job struct {
	ctx      context.Context
	snapshot order.Snapshot
	ownerID  int64
}

// Fanout implements ports.Notifier.
type Fanout struct {
	uowFactory commands.NotificationUoWFactory
	pusher     ports.Pusher
	cfg        Config
	logger     *zap.Logger
	now        func() time.Time

	mu     sync.RWMutex
	closed bool
	jobs   chan job
	wg     sync.WaitGroup
}

// New starts the workers. Call Close to stop them.
func New(uowFactory commands.NotificationUoWFactory, pusher ports.Pusher, cfg Config, logger *zap.Logger) *Fanout {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	f := &Fanout{
		uowFactory: uowFactory,
		pusher:     pusher,
		cfg:        cfg,
		logger:     logger.With(zap.String("component", "fanout")),
		now:        time.Now,
		jobs:       make(chan job, cfg.QueueSize),
	}

	f.wg.Add(cfg.Workers)
	for range cfg.Workers {
		go f.work()
	}
	return f
}

// OrderStatusChanged queues the change and returns at once. When the queue is
// full or the fan-out is closed the change is dropped and counted.
func (f *Fanout) OrderStatusChanged(ctx context.Context, s order.Snapshot, ownerID int64) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		f.drop(s, "closed")
		return
	}

	select {
	case f.jobs <- job{ctx: context.WithoutCancel(ctx), snapshot: s, ownerID: ownerID}:
	default:
		f.drop(s, "queue full")
	}
}

// Close stops accepting work and waits until the queue is drained or ctx ends.
func (f *Fanout) Close(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	f.closed = true
	close(f.jobs)
	f.mu.Unlock()

	done := make(chan struct{})
	go func() {
		f.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Fanout) drop(s order.Snapshot, reason string) {
	metrics.NotificationsDroppedTotal.Inc()
	f.logger.Warn("order notification dropped",
		zap.Int64("order_id", s.ID),
		zap.Stringer("status", s.Status),
		zap.String("reason", reason))
}

func (f *Fanout) work() {
	defer f.wg.Done()
	for j := range f.jobs {
		f.deliver(j.ctx, j.snapshot, j.ownerID)
	}
}

// deliver handles one status change. Each recipient is independent: a failure
// for one never stops the others.
func (f *Fanout) deliver(ctx context.Context, s order.Snapshot, ownerID int64) {
	for _, recipient := range services.Recipients(s, ownerID) {
		msg := services.StatusMessage(s, recipient.Role())

		if err := f.store(ctx, recipient, msg, s.ID); err != nil {
			f.logger.Error("failed to store notification",
				zap.Int64("order_id", s.ID),
				zap.Stringer("recipient", recipient),
				zap.Error(err))
		} else {
			metrics.NotificationsCreatedTotal.WithLabelValues(recipient.Role().String()).Inc()
		}

		f.push(ctx, recipient, msg, s)
	}
}

func (f *Fanout) store(ctx context.Context, recipient notification.Recipient, msg services.Message, orderID int64) error {
	n, err := notification.NewNotification(recipient, msg.Title, msg.Body, msg.Kind, &orderID, f.now())
	if err != nil {
		return err
	}

	uow := f.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (f *Fanout) push(ctx context.Context, recipient notification.Recipient, msg services.Message, s order.Snapshot) {
	if f.pusher == nil {
		return
	}

	tokens, err := f.activeTokens(ctx, recipient)
	if err != nil {
		f.logger.Error("failed to load device tokens", zap.Stringer("recipient", recipient), zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		return
	}

	pushCtx, cancel := context.WithTimeout(ctx, f.cfg.PushTimeout)
	defer cancel()

	results, err := f.pusher.PushMulticast(pushCtx, tokens, ports.PushMessage{
		Title: msg.Title,
		Body:  msg.Body,
		Data: map[string]string{
			"order_id":     strconv.FormatInt(s.ID, 10),
			"order_number": s.OrderNumber,
			"status":       s.Status.String(),
			"type":         string(msg.Kind),
		},
	})
	if err != nil {
		metrics.PushResultsTotal.WithLabelValues("failed").Add(float64(len(tokens)))
		f.logger.Warn("push failed",
			zap.Int64("order_id", s.ID),
			zap.Stringer("recipient", recipient),
			zap.Error(err))
		return
	}

	for _, r := range results {
		switch {
		case r.Err == nil:
			metrics.PushResultsTotal.WithLabelValues("sent").Inc()
		case errors.Is(r.Err, ports.ErrTokenUnregistered):
			metrics.PushResultsTotal.WithLabelValues("unregistered").Inc()
			if err = f.deactivate(ctx, r.Token); err != nil {
				f.logger.Error("failed to deactivate device token", zap.Error(err))
			}
		default:
			metrics.PushResultsTotal.WithLabelValues("failed").Inc()
			f.logger.Debug("push to device failed", zap.Stringer("recipient", recipient), zap.Error(r.Err))
		}
	}
}

func (f *Fanout) activeTokens(ctx context.Context, recipient notification.Recipient) ([]string, error) {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registered, err := uow.DeviceTokenRepository().ListActive(ctx, recipient)
	if err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(registered))
	for _, t := range registered {
		tokens = append(tokens, t.Token())
	}
	return tokens, nil
}

func (f *Fanout) deactivate(ctx context.Context, token string) error {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeviceTokenRepository().Deactivate(ctx, token, f.now()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
