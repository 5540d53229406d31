package services_test

import (
	"testing"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMessage(t *testing.T) {
	testCases := []struct {
		status    order.Status
		role      kernel.Role
		wantTitle string
		wantBody  string
	}{
		{order.Accepted, kernel.Customer, "Order #ABCDE12345 Accepted", "The restaurant has accepted your order."},
		{order.Preparing, kernel.Customer, "Order #ABCDE12345 Preparing", "The restaurant is preparing your order."},
		{order.Ready, kernel.Owner, "Order #ABCDE12345 Ready", "Order #ABCDE12345 is ready for pickup."},
		{order.PickedUp, kernel.Customer, "Order #ABCDE12345 Picked Up", "A delivery partner is on the way with your order!"},
		{order.PickedUp, kernel.Owner, "Order #ABCDE12345 Picked Up", "A delivery partner has picked up the order."},
		{order.Delivered, kernel.Customer, "Order #ABCDE12345 Delivered", "Your order has been delivered. Enjoy your meal!"},
		{order.Delivered, kernel.DeliveryPartner, "Order #ABCDE12345 Delivered", "Order #ABCDE12345 is marked as delivered."},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String()+"/"+tc.role.String(), func(t *testing.T) {
			o := newOrder(t, int64Ptr(9))
			advance(t, o, tc.status)

			msg := services.StatusMessage(o.Snapshot(), tc.role)

			assert.Equal(t, tc.wantTitle, msg.Title)
			assert.Equal(t, tc.wantBody, msg.Body)
			assert.Equal(t, notification.KindOrderUpdate, msg.Kind)
		})
	}

	t.Run("rejection carries the reason", func(t *testing.T) {
		o := newOrder(t, int64Ptr(9))
		require.NoError(t, o.Reject("out of stock", now))

		msg := services.StatusMessage(o.Snapshot(), kernel.Customer)

		assert.Equal(t, "Order #ABCDE12345 Rejected", msg.Title)
		assert.Equal(t, "Order rejected: out of stock", msg.Body)
	})

	t.Run("new order goes to the owner", func(t *testing.T) {
		msg := services.StatusMessage(newOrder(t, int64Ptr(9)).Snapshot(), kernel.Owner)

		assert.Equal(t, notification.KindNewOrder, msg.Kind)
		assert.Contains(t, msg.Title, "Order #ABCDE12345")
		assert.Equal(t, "You have a new order #ABCDE12345 from Asha.", msg.Body)
	})

	t.Run("cancelled", func(t *testing.T) {
		o := newOrder(t, nil)
		require.NoError(t, o.Cancel(now))

		msg := services.StatusMessage(o.Snapshot(), kernel.Owner)

		assert.Equal(t, "Order #ABCDE12345 Cancelled", msg.Title)
	})
}
