package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderItem is one requested menu item. Prices are looked up, never trusted from the caller.
type PlaceOrderItem struct {
	MenuItemID   int64
	Quantity     int
	Instructions string
}

// PlaceOrderCommand is a customer's checkout request.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          int64
	customerName        string
	customerPhone       string
	restaurantID        int64
	items               []PlaceOrderItem
	deliveryAddress     string
	paymentMethod       string
	specialInstructions string

	guard guard.ConstructorGuard
}

type PlaceOrderParams struct {
	CustomerID          int64
	CustomerName        string
	CustomerPhone       string
	RestaurantID        int64
	Items               []PlaceOrderItem
	DeliveryAddress     string
	PaymentMethod       string
	SpecialInstructions string
}

func NewPlaceOrderCommand(p PlaceOrderParams) (PlaceOrderCommand, error) {
	var problems []error
	if p.CustomerID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("customer_id",
			fmt.Errorf("%d is not greater than 0", p.CustomerID)))
	}
	if p.RestaurantID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("restaurant_id",
			fmt.Errorf("%d is not greater than 0", p.RestaurantID)))
	}
	if strings.TrimSpace(p.DeliveryAddress) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery_address"))
	}
	if len(p.Items) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("items"))
	}
	for _, item := range p.Items {
		if item.MenuItemID <= 0 || item.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("menu item %d with quantity %d", item.MenuItemID, item.Quantity)))
			break
		}
	}
	if err := errors.Join(problems...); err != nil {
		return PlaceOrderCommand{}, err
	}

	items := make([]PlaceOrderItem, len(p.Items))
	copy(items, p.Items)
	return PlaceOrderCommand{
		customerID:          p.CustomerID,
		customerName:        strings.TrimSpace(p.CustomerName),
		customerPhone:       strings.TrimSpace(p.CustomerPhone),
		restaurantID:        p.RestaurantID,
		items:               items,
		deliveryAddress:     strings.TrimSpace(p.DeliveryAddress),
		paymentMethod:       strings.TrimSpace(p.PaymentMethod),
		specialInstructions: p.SpecialInstructions,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() int64 {
	return c.customerID
}

func (c PlaceOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	items := make([]PlaceOrderItem, len(c.items))
	copy(items, c.items)
	return items
}
