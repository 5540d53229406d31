package order

import (
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
)

// Snapshot is a detached copy of an order. Storage restores orders from it and
// fan-out, broadcast and API layers read it without touching the aggregate.
type Snapshot struct {
	ID                  int64
	OrderNumber         string
	RestaurantID        int64
	CustomerID          *int64
	DeliveryPartnerID   *int64
	CustomerName        string
	CustomerPhone       string
	DeliveryAddress     string
	Lines               []Line
	Total               kernel.Money
	DeliveryFee         kernel.Money
	Tax                 kernel.Money
	Discount            kernel.Money
	PaymentMethod       string
	PaymentStatus       string
	SpecialInstructions string
	Status              Status
	Timeline            Timeline
	RejectionReason     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (s Snapshot) Charges() Charges {
	return Charges{
		Total:       s.Total,
		DeliveryFee: s.DeliveryFee,
		Tax:         s.Tax,
		Discount:    s.Discount,
	}
}

// ItemCount is the number of units across all lines.
func (s Snapshot) ItemCount() int {
	count := 0
	for _, l := range s.Lines {
		count += l.Quantity()
	}
	return count
}
