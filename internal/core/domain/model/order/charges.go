package order

import "github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"

// Charges are the monetary fields of an order. Total is what the customer pays.
type Charges struct {
	Total       kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Discount    kernel.Money
}
