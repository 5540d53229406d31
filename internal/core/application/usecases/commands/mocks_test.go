package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/restaurant"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id int64) (restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetByOwner(ctx context.Context, ownerID int64) (restaurant.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (restaurant.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID)
	return args.Get(0).(restaurant.MenuItem), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id int64) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockDeviceTokenRepository struct{ mock.Mock }

func (m *MockDeviceTokenRepository) Upsert(ctx context.Context, t *notification.DeviceToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockDeviceTokenRepository) ListActive(ctx context.Context, r notification.Recipient) ([]*notification.DeviceToken, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.DeviceToken), args.Error(1)
}

func (m *MockDeviceTokenRepository) Deactivate(ctx context.Context, token string, at time.Time) error {
	args := m.Called(ctx, token, at)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockNotificationUoW) DeviceTokenRepository() ports.DeviceTokenRepository {
	args := m.Called()
	return args.Get(0).(ports.DeviceTokenRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, s order.Snapshot, ownerID int64) {
	m.Called(ctx, s, ownerID)
}

type MockBroadcaster struct{ mock.Mock }

func (m *MockBroadcaster) BroadcastOrder(ctx context.Context, s order.Snapshot) {
	m.Called(ctx, s)
}

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func mustActor(t *testing.T, role kernel.Role, id int64) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(role, id)
	require.NoError(t, err)
	return a
}

func mustRestaurant(t *testing.T, id, ownerID int64) restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.RestoreRestaurant(id, ownerID, "Spice Hub", true)
	require.NoError(t, err)
	return r
}

// newStoredOrder builds order 42 of restaurant 3 for customer 9, advanced to status.
func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(11, 2, kernel.MustNewMoney("200.00"), "")
	require.NoError(t, err)
	customerID := int64(9)
	o, err := order.NewOrder("ABCDE12345", order.Details{
		RestaurantID:    3,
		CustomerID:      &customerID,
		DeliveryAddress: "12 Park Street",
	}, []order.Line{line}, order.Charges{
		Total:       kernel.MustNewMoney("450.00"),
		DeliveryFee: kernel.MustNewMoney("30.00"),
		Tax:         kernel.MustNewMoney("20.00"),
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(42))

	steps := []func() error{
		func() error { return o.Accept(testNow) },
		func() error { return o.StartPreparing(testNow) },
		func() error { return o.MarkReady(testNow) },
		func() error { return o.PickUp(21, testNow) },
		func() error { return o.Deliver(21, testNow) },
	}
	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	return o
}
