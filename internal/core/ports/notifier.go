package ports

import (
	"context"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
)

// Notifier tells the affected people that an order reached its current status.
// It returns immediately; delivery happens in the background and never fails the caller.
type Notifier interface {
	OrderStatusChanged(ctx context.Context, s order.Snapshot, ownerID int64)
}

// Broadcaster pushes the order to the live sessions of its restaurant.
// Failures are handled inside; the caller is never blocked by a slow session.
type Broadcaster interface {
	BroadcastOrder(ctx context.Context, s order.Snapshot)
}
