package queries

import (
	"errors"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrGetAvailableDeliveryOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableDeliveryOrdersQuery must be created via NewGetAvailableDeliveryOrdersQuery constructor",
	)
)

// GetAvailableDeliveryOrdersQuery lists orders any delivery partner may claim:
// ready or released and not yet assigned.
type GetAvailableDeliveryOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableDeliveryOrdersQuery() GetAvailableDeliveryOrdersQuery {
	return GetAvailableDeliveryOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveryOrdersQueryIsNotConstructed)
}
