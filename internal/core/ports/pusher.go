package ports

import (
	"context"
	"errors"
)

// ErrTokenUnregistered marks a push result whose token the provider no longer
// accepts. Such tokens are deactivated.
var ErrTokenUnregistered = errors.New("push token is unregistered")

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult is the outcome for one token. Err is nil on success.
type PushResult struct {
	Token string
	Err   error
}

// Pusher delivers a message to many device tokens at once.
// The returned error covers failures of the whole call; per-token failures are in the results.
type Pusher interface {
	PushMulticast(ctx context.Context, tokens []string, msg PushMessage) ([]PushResult, error)
}
