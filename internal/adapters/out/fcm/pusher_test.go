package fcm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct{ mock.Mock }

func (m *MockSender) SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.BatchResponse), args.Error(1)
}

var (
	errGone   = errors.New("requested entity was not found")
	errBadArg = errors.New("invalid argument")
)

func newTestPusher(sender multicastSender) *Pusher {
	p := newPusher(sender, nil)
	p.isUnregistered = func(err error) bool { return errors.Is(err, errGone) }
	p.isInvalidArgument = func(err error) bool { return errors.Is(err, errBadArg) }
	return p
}

func TestPushMulticast_MapsPerTokenResults(t *testing.T) {
	sender := new(MockSender)
	unavailable := errors.New("service unavailable")
	sender.On("SendEachForMulticast", mock.Anything, mock.MatchedBy(func(m *messaging.MulticastMessage) bool {
		return len(m.Tokens) == 3 &&
			m.Notification.Title == "Order Ready" &&
			m.Data["order_id"] == "42"
	})).Return(&messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 2,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m-1"},
			{Error: errGone},
			{Error: unavailable},
		},
	}, nil).Once()

	results, err := newTestPusher(sender).PushMulticast(t.Context(), []string{"a", "b", "c"}, ports.PushMessage{
		Title: "Order Ready",
		Body:  "Your order is ready",
		Data:  map[string]string{"order_id": "42"},
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Token)
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, ports.ErrTokenUnregistered)
	require.ErrorIs(t, results[2].Err, unavailable)
	assert.NotErrorIs(t, results[2].Err, ports.ErrTokenUnregistered)
	sender.AssertExpectations(t)
}

func TestPushMulticast_InvalidArgument(t *testing.T) {
	badToken := fmt.Errorf("%w: The registration token is not a valid FCM registration token", errBadArg)
	badPayload := fmt.Errorf("%w: data must not contain reserved keys", errBadArg)

	tests := []struct {
		name             string
		responses        []*messaging.SendResponse
		wantUnregistered []bool
	}{
		{
			name:             "malformed token among delivered ones",
			responses:        []*messaging.SendResponse{{Success: true}, {Error: badPayload}},
			wantUnregistered: []bool{false, true},
		},
		{
			name:             "every token rejected for the payload",
			responses:        []*messaging.SendResponse{{Error: badPayload}, {Error: badPayload}},
			wantUnregistered: []bool{false, false},
		},
		{
			name:             "single malformed token named by the error",
			responses:        []*messaging.SendResponse{{Error: badToken}},
			wantUnregistered: []bool{true},
		},
		{
			name:             "single token rejected for the payload",
			responses:        []*messaging.SendResponse{{Error: badPayload}},
			wantUnregistered: []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := make([]string, len(tt.responses))
			for i := range tokens {
				tokens[i] = fmt.Sprintf("tok-%d", i)
			}
			sender := new(MockSender)
			sender.On("SendEachForMulticast", mock.Anything, mock.Anything).
				Return(&messaging.BatchResponse{Responses: tt.responses}, nil).Once()

			results, err := newTestPusher(sender).PushMulticast(t.Context(), tokens, ports.PushMessage{Title: "t"})

			require.NoError(t, err)
			require.Len(t, results, len(tokens))
			for i, want := range tt.wantUnregistered {
				assert.Equal(t, want, errors.Is(results[i].Err, ports.ErrTokenUnregistered), tokens[i])
			}
		})
	}
}

func TestPushMulticast_SplitsLargeBatches(t *testing.T) {
	sender := new(MockSender)
	tokens := make([]string, MaxTokensPerCall+2)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}
	success := func(n int) *messaging.BatchResponse {
		resp := &messaging.BatchResponse{SuccessCount: n}
		for range n {
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true})
		}
		return resp
	}
	sender.On("SendEachForMulticast", mock.Anything, mock.MatchedBy(func(m *messaging.MulticastMessage) bool {
		return len(m.Tokens) == MaxTokensPerCall
	})).Return(success(MaxTokensPerCall), nil).Once()
	sender.On("SendEachForMulticast", mock.Anything, mock.MatchedBy(func(m *messaging.MulticastMessage) bool {
		return len(m.Tokens) == 2 && m.Tokens[0] == fmt.Sprintf("tok-%d", MaxTokensPerCall)
	})).Return(success(2), nil).Once()

	results, err := newTestPusher(sender).PushMulticast(t.Context(), tokens, ports.PushMessage{Title: "t"})

	require.NoError(t, err)
	require.Len(t, results, len(tokens))
	assert.Equal(t, tokens[len(tokens)-1], results[len(results)-1].Token)
	sender.AssertExpectations(t)
}

func TestPushMulticast_WholeCallFailure(t *testing.T) {
	sender := new(MockSender)
	sender.On("SendEachForMulticast", mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded")).Once()

	results, err := newTestPusher(sender).PushMulticast(t.Context(), []string{"a"}, ports.PushMessage{Title: "t"})

	require.Error(t, err)
	assert.Nil(t, results)
}

func TestPushMulticast_MissingResponse(t *testing.T) {
	sender := new(MockSender)
	sender.On("SendEachForMulticast", mock.Anything, mock.Anything).
		Return(&messaging.BatchResponse{}, nil).Once()

	results, err := newTestPusher(sender).PushMulticast(t.Context(), []string{"a"}, ports.PushMessage{Title: "t"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, errNoResponse)
}

func TestLogPusher_ReportsEveryTokenDelivered(t *testing.T) {
	results, err := NewLogPusher(nil).PushMulticast(t.Context(), []string{"a", "b"}, ports.PushMessage{Title: "t"})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}
