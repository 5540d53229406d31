package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery loads one order for the caller.
//
// Visibility:
//   - an owner sees orders of their restaurant
//   - a customer sees their own orders
//   - a delivery partner sees unassigned orders and the ones they carry
//   - the system sees everything
//
// Orders outside an owner's or customer's scope are reported as not found; a
// partner asking for another partner's order is forbidden.
type GetOrderDetailsQuery struct {
	orderID int64
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID int64, actor kernel.Actor) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	if err := actor.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}

func (q GetOrderDetailsQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderItemView is one order line with the menu item name.
type OrderItemView struct {
	MenuItemID   int64
	Name         string
	Quantity     int
	Price        kernel.Money
	Total        kernel.Money
	Instructions string
}

// OrderDetails is the full order view.
type OrderDetails struct {
	OrderSummary

	RestaurantOwnerID   int64
	CustomerID          *int64
	DeliveryPartnerID   *int64
	CustomerPhone       string
	SpecialInstructions string
	PaymentStatus       string
	Items               []OrderItemView
	Subtotal            kernel.Money
	DeliveryFee         kernel.Money
	Tax                 kernel.Money
	Discount            kernel.Money
	RejectionReason     *string
	Timeline            order.Timeline
	UpdatedAt           time.Time
}
