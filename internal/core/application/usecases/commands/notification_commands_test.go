package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationMocks struct {
	factory       *MockNotificationUoWFactory
	uow           *MockNotificationUoW
	notifications *MockNotificationRepository
	tokens        *MockDeviceTokenRepository
}

func newNotificationMocks() notificationMocks {
	return notificationMocks{
		factory:       new(MockNotificationUoWFactory),
		uow:           new(MockNotificationUoW),
		notifications: new(MockNotificationRepository),
		tokens:        new(MockDeviceTokenRepository),
	}
}

func (m notificationMocks) assertExpectations(t *testing.T) {
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
	m.tokens.AssertExpectations(t)
}

func mustRecipient(t *testing.T, role kernel.Role, id int64) notification.Recipient {
	t.Helper()
	r, err := notification.NewRecipient(role, id)
	require.NoError(t, err)
	return r
}

func storedNotification(t *testing.T, recipient notification.Recipient, isRead bool) *notification.Notification {
	t.Helper()
	orderID := int64(42)
	n, err := notification.RestoreNotification(5, recipient, "Order #ABCDE12345 Accepted",
		"Your order has been accepted.", notification.KindOrderUpdate, &orderID, isRead, testNow)
	require.NoError(t, err)
	return n
}

func TestMarkNotificationReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	customer := mustRecipient(t, kernel.Customer, 9)
	stored := storedNotification(t, customer, false)
	cmd, err := commands.NewMarkNotificationReadCommand(5, customer)
	require.NoError(t, err)

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("NotificationRepository").Return(m.notifications).Once(),
		m.notifications.On("Get", ctx, int64(5)).Return(stored, nil).Once(),
		m.notifications.On("Update", ctx, stored).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewMarkNotificationReadCommandHandler(m.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, stored.IsRead())
	m.assertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_OtherRecipient(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	stored := storedNotification(t, mustRecipient(t, kernel.Customer, 9), false)
	// Same id, different role.
	cmd, err := commands.NewMarkNotificationReadCommand(5, mustRecipient(t, kernel.DeliveryPartner, 9))
	require.NoError(t, err)

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("NotificationRepository").Return(m.notifications).Once()
	m.notifications.On("Get", ctx, int64(5)).Return(stored, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewMarkNotificationReadCommandHandler(m.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, stored.IsRead())
	m.notifications.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_AlreadyRead(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	owner := mustRecipient(t, kernel.Owner, 1)
	cmd, err := commands.NewMarkNotificationReadCommand(5, owner)
	require.NoError(t, err)

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("NotificationRepository").Return(m.notifications).Once()
	m.notifications.On("Get", ctx, int64(5)).Return(storedNotification(t, owner, true), nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewMarkNotificationReadCommandHandler(m.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_StorageFailure(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	cmd, err := commands.NewMarkNotificationReadCommand(5, mustRecipient(t, kernel.Customer, 9))
	require.NoError(t, err)

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()

	err = commands.NewMarkNotificationReadCommandHandler(m.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	m.assertExpectations(t)
}

func TestNewMarkNotificationReadCommand(t *testing.T) {
	_, err := commands.NewMarkNotificationReadCommand(0, mustRecipient(t, kernel.Customer, 9))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewMarkNotificationReadCommand(5, notification.Recipient{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, commands.MarkNotificationReadCommand{}.Validate(),
		commands.ErrMarkNotificationReadCommandIsNotConstructed)
}

func TestRegisterDeviceTokenCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	partner := mustRecipient(t, kernel.DeliveryPartner, 21)
	cmd, err := commands.NewRegisterDeviceTokenCommand(partner, " fcm-token-1 ", "Android")
	require.NoError(t, err)

	isToken := mock.MatchedBy(func(tok *notification.DeviceToken) bool {
		return tok.Token() == "fcm-token-1" &&
			tok.DeviceType() == notification.DeviceAndroid &&
			tok.Recipient() == partner &&
			tok.IsActive()
	})

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("DeviceTokenRepository").Return(m.tokens).Once(),
		m.tokens.On("Upsert", ctx, isToken).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewRegisterDeviceTokenCommandHandler(m.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestRegisterDeviceTokenCommandHandler_Handle_UpsertFails(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	cmd, err := commands.NewRegisterDeviceTokenCommand(mustRecipient(t, kernel.Customer, 9), "tok", "ios")
	require.NoError(t, err)

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("DeviceTokenRepository").Return(m.tokens).Once()
	m.tokens.On("Upsert", ctx, mock.Anything).Return(errors.New("disk full")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewRegisterDeviceTokenCommandHandler(m.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assertExpectations(t)
}

func TestNewRegisterDeviceTokenCommand(t *testing.T) {
	customer := mustRecipient(t, kernel.Customer, 9)

	_, err := commands.NewRegisterDeviceTokenCommand(customer, "   ", "web")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRegisterDeviceTokenCommand(customer, "tok", "blackberry")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewRegisterDeviceTokenCommand(notification.Recipient{}, "", "pager")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient")
	assert.Contains(t, err.Error(), "token")
}

func TestPurgeReadNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	cutoff := testNow.Add(-30 * 24 * time.Hour)
	cmd, err := commands.NewPurgeReadNotificationsCommand(cutoff)
	require.NoError(t, err)

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("NotificationRepository").Return(m.notifications).Once(),
		m.notifications.On("DeleteReadBefore", ctx, cutoff).Return(int64(12), nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	removed, err := commands.NewPurgeReadNotificationsCommandHandler(m.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
	m.assertExpectations(t)
}

func TestPurgeReadNotificationsCommandHandler_Handle_CommitFails(t *testing.T) {
	ctx := t.Context()
	m := newNotificationMocks()
	cmd, err := commands.NewPurgeReadNotificationsCommand(testNow)
	require.NoError(t, err)

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("NotificationRepository").Return(m.notifications).Once()
	m.notifications.On("DeleteReadBefore", ctx, testNow).Return(int64(3), nil).Once()
	m.uow.On("Commit", ctx).Return(errors.New("serialization failure")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	removed, err := commands.NewPurgeReadNotificationsCommandHandler(m.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.Zero(t, removed)
	m.assertExpectations(t)
}

func TestNewPurgeReadNotificationsCommand(t *testing.T) {
	_, err := commands.NewPurgeReadNotificationsCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewPurgeReadNotificationsCommandHandler(nil).Handle(t.Context(), commands.PurgeReadNotificationsCommand{})
	require.ErrorIs(t, err, commands.ErrPurgeReadNotificationsCommandIsNotConstructed)
}
