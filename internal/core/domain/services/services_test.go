package services_test

import (
	"testing"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, customerID *int64) *order.Order {
	t.Helper()
	line, err := order.NewLine(11, 2, kernel.MustNewMoney("200.00"), "")
	require.NoError(t, err)
	o, err := order.NewOrder("ABCDE12345", order.Details{
		RestaurantID:    3,
		CustomerID:      customerID,
		CustomerName:    "Asha",
		DeliveryAddress: "12 Park Street",
	}, []order.Line{line}, order.Charges{Total: kernel.MustNewMoney("460.00")}, now)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(42))
	return o
}

// advance moves o along the delivery path until it reaches target.
func advance(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	path := []func() error{
		func() error { return o.Accept(now) },
		func() error { return o.StartPreparing(now) },
		func() error { return o.MarkReady(now) },
		func() error { return o.PickUp(21, now) },
		func() error { return o.Deliver(21, now) },
	}
	for _, step := range path {
		if o.Status() == target {
			return
		}
		require.NoError(t, step())
	}
	require.Equal(t, target, o.Status())
}

func int64Ptr(v int64) *int64 {
	return &v
}
