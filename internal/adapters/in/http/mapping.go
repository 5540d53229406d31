package http

import (
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/queries"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/generated/servers"
)

func money(m kernel.Money) *servers.Money {
	s := m.String()
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toTimeline(tl order.Timeline) *servers.OrderTimeline {
	return &servers.OrderTimeline{
		AcceptedAt:  tl.AcceptedAt,
		PreparingAt: tl.PreparingAt,
		ReadyAt:     tl.ReadyAt,
		PickedUpAt:  tl.PickedUpAt,
		ReleasedAt:  tl.ReleasedAt,
		DeliveredAt: tl.DeliveredAt,
		RejectedAt:  tl.RejectedAt,
		CompletedAt: tl.CompletedAt,
	}
}

func toOrder(s order.Snapshot) servers.Order {
	itemCount := s.ItemCount()
	return servers.Order{
		Id:                s.ID,
		OrderNumber:       s.OrderNumber,
		RestaurantId:      s.RestaurantID,
		CustomerId:        s.CustomerID,
		DeliveryPartnerId: s.DeliveryPartnerID,
		Status:            servers.OrderStatus(s.Status.String()),
		ItemCount:         &itemCount,
		TotalAmount:       s.Total.String(),
		DeliveryFee:       money(s.DeliveryFee),
		TaxAmount:         money(s.Tax),
		DiscountAmount:    money(s.Discount),
		PaymentMethod:     optional(s.PaymentMethod),
		PaymentStatus:     optional(s.PaymentStatus),
		RejectionReason:   s.RejectionReason,
		Timeline:          toTimeline(s.Timeline),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toSummaries(in []queries.OrderSummary) []servers.OrderSummary {
	out := make([]servers.OrderSummary, 0, len(in))
	for _, s := range in {
		out = append(out, servers.OrderSummary{
			Id:              s.ID,
			OrderNumber:     s.OrderNumber,
			RestaurantId:    s.RestaurantID,
			RestaurantName:  optional(s.RestaurantName),
			CustomerName:    optional(s.CustomerName),
			DeliveryAddress: optional(s.DeliveryAddress),
			ItemCount:       s.ItemCount,
			TotalAmount:     s.Total.String(),
			PaymentMethod:   optional(s.PaymentMethod),
			Status:          servers.OrderStatus(s.Status.String()),
			CreatedAt:       s.CreatedAt,
		})
	}
	return out
}

func toItems(in []queries.OrderItemView) *[]servers.OrderItem {
	out := make([]servers.OrderItem, 0, len(in))
	for _, i := range in {
		out = append(out, servers.OrderItem{
			MenuItemId:          i.MenuItemID,
			Name:                optional(i.Name),
			Quantity:            i.Quantity,
			Price:               i.Price.String(),
			Total:               i.Total.String(),
			SpecialInstructions: optional(i.Instructions),
		})
	}
	return &out
}

func toDetails(d queries.OrderDetails) servers.OrderDetails {
	updatedAt := d.UpdatedAt
	return servers.OrderDetails{
		Id:                  d.ID,
		OrderNumber:         d.OrderNumber,
		RestaurantId:        d.RestaurantID,
		RestaurantName:      optional(d.RestaurantName),
		CustomerId:          d.CustomerID,
		CustomerName:        optional(d.CustomerName),
		CustomerPhone:       optional(d.CustomerPhone),
		DeliveryAddress:     optional(d.DeliveryAddress),
		DeliveryPartnerId:   d.DeliveryPartnerID,
		ItemCount:           d.ItemCount,
		Items:               toItems(d.Items),
		Subtotal:            money(d.Subtotal),
		DeliveryFee:         money(d.DeliveryFee),
		TaxAmount:           money(d.Tax),
		DiscountAmount:      money(d.Discount),
		TotalAmount:         d.Total.String(),
		PaymentMethod:       optional(d.PaymentMethod),
		PaymentStatus:       optional(d.PaymentStatus),
		SpecialInstructions: optional(d.SpecialInstructions),
		Status:              servers.OrderStatus(d.Status.String()),
		RejectionReason:     d.RejectionReason,
		Timeline:            toTimeline(d.Timeline),
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           &updatedAt,
	}
}

func toTracking(t queries.OrderTracking) servers.OrderTracking {
	steps := make([]servers.TrackingStep, 0, len(t.Steps))
	for _, s := range t.Steps {
		steps = append(steps, servers.TrackingStep{
			Title:       s.Title,
			Subtitle:    optional(s.Subtitle),
			Timestamp:   s.At,
			IsCompleted: s.IsCompleted,
			IsCurrent:   s.IsCurrent,
		})
	}
	return servers.OrderTracking{
		OrderId:           t.OrderID,
		OrderNumber:       t.OrderNumber,
		RestaurantName:    optional(t.RestaurantName),
		Status:            servers.OrderStatus(t.Status.String()),
		DeliveryPartnerId: t.DeliveryPartnerID,
		Steps:             steps,
		Items:             toItems(t.Items),
		Subtotal:          money(t.Subtotal),
		DeliveryFee:       money(t.DeliveryFee),
		TaxAmount:         money(t.Tax),
		DiscountAmount:    money(t.Discount),
		TotalAmount:       money(t.Total),
	}
}

func toNotifications(in []queries.NotificationView) []servers.Notification {
	out := make([]servers.Notification, 0, len(in))
	for _, n := range in {
		out = append(out, servers.Notification{
			Id:               n.ID,
			Title:            n.Title,
			Message:          n.Message,
			NotificationType: servers.NotificationNotificationType(n.Kind),
			OrderId:          n.OrderID,
			IsRead:           n.IsRead,
			CreatedAt:        n.CreatedAt,
		})
	}
	return out
}
