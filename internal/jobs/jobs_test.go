package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPinger struct{ mock.Mock }

func (m *MockPinger) PingAll(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

type MockPurger struct{ mock.Mock }

func (m *MockPurger) Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func TestLiveKeepaliveJob_RunPingsSessions(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("PingAll", mock.Anything).Return(2).Once()

	NewLiveKeepaliveJob(pinger, "", zap.NewNop()).Run(t.Context())

	pinger.AssertExpectations(t)
}

func TestLiveKeepaliveJob_InvalidSpec(t *testing.T) {
	job := NewLiveKeepaliveJob(new(MockPinger), "not a spec", zap.NewNop())

	require.Error(t, job.Start())
}

func TestNotificationRetentionJob_RunUsesRetentionCutoff(t *testing.T) {
	now := time.Date(2025, 3, 31, 3, 0, 0, 0, time.UTC)
	purger := new(MockPurger)
	purger.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PurgeReadNotificationsCommand) bool {
		return cmd.Cutoff().Equal(now.AddDate(0, 0, -7))
	})).Return(int64(3), nil).Once()

	job := NewNotificationRetentionJob(purger, 7, zap.NewNop())
	job.now = func() time.Time { return now }

	require.NoError(t, job.Run(t.Context()))
	purger.AssertExpectations(t)
}

func TestNotificationRetentionJob_DefaultsRetention(t *testing.T) {
	job := NewNotificationRetentionJob(new(MockPurger), 0, zap.NewNop())

	assert.Equal(t, DefaultNotificationRetentionDays*24*time.Hour, job.retention)
}

func TestNotificationRetentionJob_RunReturnsHandlerError(t *testing.T) {
	purger := new(MockPurger)
	purger.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	err := NewNotificationRetentionJob(purger, 30, zap.NewNop()).Run(t.Context())

	require.EqualError(t, err, "db down")
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	jm := NewJobManager(new(MockPinger), "", new(MockPurger), 30, zap.NewNop())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAllFailsOnBadSpec(t *testing.T) {
	jm := NewJobManager(new(MockPinger), "bogus", new(MockPurger), 30, zap.NewNop())

	require.Error(t, jm.StartAll())
}
