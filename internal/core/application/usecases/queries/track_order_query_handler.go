package queries

import (
	"context"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle returns the tracking view. Orders of other customers are reported as not found.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderTracking, error) {
	if err := query.Validate(); err != nil {
		return OrderTracking{}, err
	}

	d, err := loadOrderDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderTracking{}, queryError("load order tracking", err)
	}

	customer, err := kernel.NewActor(kernel.Customer, query.CustomerID())
	if err != nil {
		return OrderTracking{}, err
	}
	if err = checkVisibility(d, customer); err != nil {
		return OrderTracking{}, err
	}

	return OrderTracking{
		OrderID:           d.ID,
		OrderNumber:       d.OrderNumber,
		RestaurantName:    d.RestaurantName,
		Status:            d.Status,
		DeliveryPartnerID: d.DeliveryPartnerID,
		Steps:             buildTrackingSteps(d.Status, d.Timeline),
		Items:             d.Items,
		Subtotal:          d.Subtotal,
		DeliveryFee:       d.DeliveryFee,
		Tax:               d.Tax,
		Discount:          d.Discount,
		Total:             d.Total,
	}, nil
}
