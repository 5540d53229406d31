// Package redisrelay carries live order events between instances of the
// service over a Redis pub/sub channel.
//
// Every instance delivers an event to its own sessions first and then
// publishes it tagged with its instance id. Subscribers skip their own
// messages, so a session never gets the same event twice.
package redisrelay

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/live"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultChannel = "fastfoodie:live"

var ErrAlreadyStarted = errors.New("relay is already started")

// LocalBroadcaster delivers a relayed event to the sessions of this instance.
type LocalBroadcaster interface {
	Broadcast(ctx context.Context, restaurantID int64, ev live.Event)
}

type message struct {
	Instance     string     `json:"instance"`
	RestaurantID int64      `json:"restaurant_id"`
	Event        live.Event `json:"event"`
}

// Relay implements live.Publisher.
type Relay struct {
	client   *redis.Client
	channel  string
	instance kernel.UUID
	local    LocalBroadcaster
	logger   *zap.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

func New(client *redis.Client, channel string, local LocalBroadcaster, logger *zap.Logger) (*Relay, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if local == nil {
		return nil, errs.NewValueIsRequiredError("local")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	instance := kernel.NewUUID()
	return &Relay{
		client:   client,
		channel:  channel,
		instance: instance,
		local:    local,
		logger:   logger.With(zap.String("component", "relay"), zap.Stringer("instance", instance)),
	}, nil
}

// Publish sends the event to the other instances.
func (r *Relay) Publish(ctx context.Context, restaurantID int64, ev live.Event) error {
	payload, err := json.Marshal(message{
		Instance:     r.instance.String(),
		RestaurantID: restaurantID,
		Event:        ev,
	})
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Start subscribes to the channel and returns once Redis confirmed the
// subscription. Relayed events are delivered in the background until Close.
func (r *Relay) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pubsub != nil {
		return ErrAlreadyStarted
	}

	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}

	r.pubsub = pubsub
	r.done = make(chan struct{})
	go r.listen(context.WithoutCancel(ctx), pubsub.Channel(), r.done)

	r.logger.Info("relay subscribed", zap.String("channel", r.channel))
	return nil
}

// Close unsubscribes and waits for the listener to stop.
func (r *Relay) Close() error {
	r.mu.Lock()
	pubsub, done := r.pubsub, r.done
	r.pubsub, r.done = nil, nil
	r.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	err := pubsub.Close()
	<-done
	return err
}

func (r *Relay) listen(ctx context.Context, ch <-chan *redis.Message, done chan<- struct{}) {
	defer close(done)
	for msg := range ch {
		r.handle(ctx, msg.Payload)
	}
}

func (r *Relay) handle(ctx context.Context, payload string) {
	var m message
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		r.logger.Warn("skipping malformed relay message", zap.Error(err))
		return
	}
	if m.Instance == r.instance.String() {
		return
	}
	r.local.Broadcast(ctx, m.RestaurantID, m.Event)
}
