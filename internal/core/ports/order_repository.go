// Package ports defines the contracts between the order lifecycle core and its
// infrastructure: repositories bound to a unit of work, the push provider, the
// live broadcaster and the notification fan-out.
package ports

import (
	"context"
	"errors"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
)

// ErrDuplicateOrderNumber is returned by OrderRepository.Add when the generated
// order number is already taken. Callers generate a new number and retry.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order together with its lines and assigns the generated id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the order only if its stored status still equals expected.
	// When another writer got there first it returns errs.ErrVersionIsInvalid
	// and nothing is written.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order with its lines. Missing orders yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the unit of work ends.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)
}
