package services

import (
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// DefaultDeliveryFee is charged on every non-empty order.
	DefaultDeliveryFee = kernel.MustNewMoney("40.00")
	// DefaultTaxRate is a percentage of the item total.
	DefaultTaxRate = decimal.NewFromInt(5)
)

// ChargeCalculator prices an order from its lines.
//
// Business rules:
//   - the delivery fee applies only when the item total is positive
//   - tax is a percentage of the item total, rounded to two places
//   - no discounts are granted at placement
//   - total = item total + delivery fee + tax - discount
type ChargeCalculator struct {
	deliveryFee kernel.Money
	taxRate     decimal.Decimal
}

func NewChargeCalculator(deliveryFee kernel.Money, taxRate decimal.Decimal) ChargeCalculator {
	return ChargeCalculator{deliveryFee: deliveryFee, taxRate: taxRate}
}

// DefaultChargeCalculator uses DefaultDeliveryFee and DefaultTaxRate.
func DefaultChargeCalculator() ChargeCalculator {
	return NewChargeCalculator(DefaultDeliveryFee, DefaultTaxRate)
}

// Calculate returns the charges for lines. The result never has a negative total.
func (c ChargeCalculator) Calculate(lines []order.Line) (order.Charges, error) {
	itemTotal := kernel.ZeroMoney()
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return order.Charges{}, err
		}
		itemTotal = itemTotal.Add(l.Total())
	}

	fee := kernel.ZeroMoney()
	if !itemTotal.IsZero() {
		fee = c.deliveryFee
	}
	tax := itemTotal.Percent(c.taxRate)
	discount := kernel.ZeroMoney()

	total, err := itemTotal.Add(fee).Add(tax).Sub(discount)
	if err != nil {
		return order.Charges{}, err
	}
	return order.Charges{
		Total:       total,
		DeliveryFee: fee,
		Tax:         tax,
		Discount:    discount,
	}, nil
}
