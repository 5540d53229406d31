// Package fcm delivers push notifications through Firebase Cloud Messaging.
package fcm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// MaxTokensPerCall is the FCM limit for one multicast request.
const MaxTokensPerCall = 500

var errNoResponse = errors.New("fcm returned no response for token")

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Pusher implements ports.Pusher.
type Pusher struct {
	client            multicastSender
	isUnregistered    func(error) bool
	isInvalidArgument func(error) bool
	logger            *zap.Logger
}

// New builds a Firebase app from a service account file.
func New(ctx context.Context, credentialsFile string, logger *zap.Logger) (*Pusher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	return newPusher(client, logger), nil
}

func newPusher(client multicastSender, logger *zap.Logger) *Pusher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pusher{
		client:            client,
		isUnregistered:    messaging.IsUnregistered,
		isInvalidArgument: messaging.IsInvalidArgument,
		logger:            logger.With(zap.String("component", "fcm")),
	}
}

// PushMulticast sends msg to every token, MaxTokensPerCall at a time, and
// returns one result per token in input order. Tokens FCM reports as
// unregistered or malformed carry ports.ErrTokenUnregistered.
func (p *Pusher) PushMulticast(ctx context.Context, tokens []string, msg ports.PushMessage) ([]ports.PushResult, error) {
	results := make([]ports.PushResult, 0, len(tokens))

	for start := 0; start < len(tokens); start += MaxTokensPerCall {
		end := min(start+MaxTokensPerCall, len(tokens))
		chunk := tokens[start:end]

		resp, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return nil, fmt.Errorf("fcm multicast: %w", err)
		}

		payloadRejected := p.payloadRejected(resp)
		for i, token := range chunk {
			results = append(results, p.result(token, resp, i, payloadRejected))
		}
		p.logger.Debug("multicast sent",
			zap.Int("success", resp.SuccessCount),
			zap.Int("failure", resp.FailureCount))
	}
	return results, nil
}

func (p *Pusher) result(token string, resp *messaging.BatchResponse, i int, payloadRejected bool) ports.PushResult {
	if i >= len(resp.Responses) || resp.Responses[i] == nil {
		return ports.PushResult{Token: token, Err: errNoResponse}
	}

	r := resp.Responses[i]
	switch {
	case r.Success:
		return ports.PushResult{Token: token}
	case p.isUnregistered(r.Error),
		p.isInvalidArgument(r.Error) && (!payloadRejected || mentionsToken(r.Error)):
		return ports.PushResult{Token: token, Err: fmt.Errorf("%w: %w", ports.ErrTokenUnregistered, r.Error)}
	default:
		return ports.PushResult{Token: token, Err: r.Error}
	}
}

// payloadRejected reports whether every token failed with INVALID_ARGUMENT.
// That points at the shared message rather than at the tokens, so none of
// them is deactivated unless the error names the registration token.
func (p *Pusher) payloadRejected(resp *messaging.BatchResponse) bool {
	if len(resp.Responses) == 0 {
		return false
	}
	for _, r := range resp.Responses {
		if r == nil || r.Success || !p.isInvalidArgument(r.Error) {
			return false
		}
	}
	return true
}

func mentionsToken(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "registration token")
}
