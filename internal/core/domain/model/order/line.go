package order

import (
	"errors"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one menu item of an order with the price it had when the order was placed.
// Lines never change after the order is created.
type Line struct {
	menuItemID   int64
	quantity     int
	unitPrice    kernel.Money
	instructions string
	guard        guard.ConstructorGuard
}

func NewLine(menuItemID int64, quantity int, unitPrice kernel.Money, instructions string) (Line, error) {
	if menuItemID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("menu item id",
			fmt.Errorf("%d is not greater than 0", menuItemID))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Line{
		menuItemID:   menuItemID,
		quantity:     quantity,
		unitPrice:    unitPrice,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) MenuItemID() int64 {
	return l.menuItemID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Instructions() string {
	return l.instructions
}

// Total is unit price times quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
