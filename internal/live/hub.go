// Package live keeps the open live sessions of restaurant dashboards and
// pushes order events to them.
//
// Sessions are grouped by restaurant. A send that fails or times out closes
// and forgets the session; the other sessions are not affected and the caller
// never sees the error.
//
// BroadcastOrder only queues the event. A single dispatcher delivers queued
// events in order, so a restaurant sees status changes in the order they were
// committed.
package live

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/metrics"

	"go.uber.org/zap"
)

const (
	DefaultSendTimeout = 5 * time.Second
	DefaultQueueSize   = 256
)

// ErrClosed is returned by Close when called twice.
var ErrClosed = errors.New("live hub is closed")

// Session is one connected dashboard.
type Session interface {
	ID() kernel.UUID
	SendJSON(ctx context.Context, v any) error
	Ping(ctx context.Context) error
	Close() error
}

// Publisher forwards events to other instances of the service.
type Publisher interface {
	Publish(ctx context.Context, restaurantID int64, ev Event) error
}

type dispatch struct {
	ctx          context.Context
	restaurantID int64
	event        Event
}

// Hub implements ports.Broadcaster.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int64]map[kernel.UUID]Session

	sendTimeout time.Duration
	publisher   Publisher
	logger      *zap.Logger

	queueMu sync.RWMutex
	closed  bool
	queue   chan dispatch
	wg      sync.WaitGroup
}

// NewHub starts the dispatcher. Call Close to stop it.
func NewHub(sendTimeout time.Duration, logger *zap.Logger) *Hub {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hub{
		sessions:    make(map[int64]map[kernel.UUID]Session),
		sendTimeout: sendTimeout,
		logger:      logger.With(zap.String("component", "live")),
		queue:       make(chan dispatch, DefaultQueueSize),
	}

	h.wg.Add(1)
	go h.dispatchLoop()
	return h
}

// SetPublisher makes BroadcastOrder forward events to other instances. Call it before serving.
func (h *Hub) SetPublisher(p Publisher) {
	h.publisher = p
}

func (h *Hub) Register(restaurantID int64, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.sessions[restaurantID]
	if !ok {
		group = make(map[kernel.UUID]Session)
		h.sessions[restaurantID] = group
	}
	if _, exists := group[s.ID()]; !exists {
		metrics.LiveSessions.Inc()
	}
	group[s.ID()] = s
}

// Unregister forgets the session and reports whether it was registered.
// It does not close the session.
func (h *Hub) Unregister(restaurantID int64, id kernel.UUID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.sessions[restaurantID]
	if !ok {
		return false
	}
	if _, ok = group[id]; !ok {
		return false
	}
	delete(group, id)
	if len(group) == 0 {
		delete(h.sessions, restaurantID)
	}
	metrics.LiveSessions.Dec()
	return true
}

// Count returns the number of sessions of a restaurant.
func (h *Hub) Count(restaurantID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[restaurantID])
}

// BroadcastOrder queues the order for its restaurant's sessions here and,
// when a publisher is set, on the other instances. It returns at once; the
// caller's cancellation does not reach the delivery. A full queue or a closed
// hub discards the event.
func (h *Hub) BroadcastOrder(ctx context.Context, s order.Snapshot) {
	ev := Event{Type: EventType(s.Status), Order: NewOrderPayload(s)}

	h.queueMu.RLock()
	defer h.queueMu.RUnlock()

	if h.closed {
		h.discard(s.RestaurantID, ev, "closed")
		return
	}

	select {
	case h.queue <- dispatch{ctx: context.WithoutCancel(ctx), restaurantID: s.RestaurantID, event: ev}:
	default:
		h.discard(s.RestaurantID, ev, "queue full")
	}
}

// Close stops accepting events and waits until the queued ones are delivered
// or ctx ends. Sessions stay open; see CloseAll.
func (h *Hub) Close(ctx context.Context) error {
	h.queueMu.Lock()
	if h.closed {
		h.queueMu.Unlock()
		return ErrClosed
	}
	h.closed = true
	close(h.queue)
	h.queueMu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) dispatchLoop() {
	defer h.wg.Done()
	for d := range h.queue {
		h.Broadcast(d.ctx, d.restaurantID, d.event)
		h.publish(d.ctx, d.restaurantID, d.event)
	}
}

func (h *Hub) publish(ctx context.Context, restaurantID int64, ev Event) {
	if h.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
	defer cancel()

	if err := h.publisher.Publish(pubCtx, restaurantID, ev); err != nil {
		h.logger.Warn("failed to relay live event",
			zap.Int64("restaurant_id", restaurantID),
			zap.String("type", ev.Type),
			zap.Error(err))
	}
}

func (h *Hub) discard(restaurantID int64, ev Event, reason string) {
	metrics.LiveSendsTotal.WithLabelValues("discarded").Inc()
	h.logger.Warn("live event discarded",
		zap.Int64("restaurant_id", restaurantID),
		zap.String("type", ev.Type),
		zap.String("reason", reason))
}

// Broadcast sends ev to the local sessions of a restaurant. Sends run in
// parallel, each bounded by the send timeout, and the lock is not held while
// sending.
func (h *Hub) Broadcast(ctx context.Context, restaurantID int64, ev Event) {
	targets := h.snapshot(restaurantID)
	if len(targets) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, s := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.sendTimeout)
			defer cancel()

			if err := s.SendJSON(sendCtx, ev); err != nil {
				metrics.LiveSendsTotal.WithLabelValues("dropped").Inc()
				h.logger.Debug("dropping live session",
					zap.Int64("restaurant_id", restaurantID),
					zap.Stringer("session_id", s.ID()),
					zap.Error(err))
				h.drop(restaurantID, s)
				return
			}
			metrics.LiveSendsTotal.WithLabelValues("sent").Inc()
		}()
	}
	wg.Wait()
}

// PingAll pings every session and drops the ones that do not answer.
// It returns the number of dropped sessions.
func (h *Hub) PingAll(ctx context.Context) int {
	type target struct {
		restaurantID int64
		session      Session
	}

	h.mu.RLock()
	var targets []target
	for restaurantID, group := range h.sessions {
		for _, s := range group {
			targets = append(targets, target{restaurantID: restaurantID, session: s})
		}
	}
	h.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		dropped int
	)
	for _, t := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()

			pingCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
			defer cancel()

			if err := t.session.Ping(pingCtx); err != nil {
				h.drop(t.restaurantID, t.session)
				mu.Lock()
				dropped++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return dropped
}

// CloseAll closes every session. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	groups := h.sessions
	h.sessions = make(map[int64]map[kernel.UUID]Session)
	h.mu.Unlock()

	for _, group := range groups {
		for _, s := range group {
			_ = s.Close()
			metrics.LiveSessions.Dec()
		}
	}
}

func (h *Hub) snapshot(restaurantID int64) []Session {
	h.mu.RLock()
	defer h.mu.RUnlock()

	group := h.sessions[restaurantID]
	out := make([]Session, 0, len(group))
	for _, s := range group {
		out = append(out, s)
	}
	return out
}

func (h *Hub) drop(restaurantID int64, s Session) {
	if h.Unregister(restaurantID, s.ID()) {
		_ = s.Close()
	}
}
