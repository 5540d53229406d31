package live

import (
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
)

const (
	EventNewOrder       = "new_order"
	EventOrderAccepted  = "order_accepted"
	EventPreparing      = "preparing"
	EventReady          = "ready"
	EventPickedUp       = "pickedup"
	EventDelivered      = "delivered"
	EventOrderReleased  = "order_released"
	EventOrderRejected  = "order_rejected"
	EventOrderCancelled = "order_cancelled"
	EventOrderUpdate    = "order_update"
)

func getEventTypes() map[order.Status]string {
	return map[order.Status]string{
		order.New:       EventNewOrder,
		order.Accepted:  EventOrderAccepted,
		order.Preparing: EventPreparing,
		order.Ready:     EventReady,
		order.PickedUp:  EventPickedUp,
		order.Delivered: EventDelivered,
		order.Released:  EventOrderReleased,
		order.Rejected:  EventOrderRejected,
		order.Cancelled: EventOrderCancelled,
	}
}

// EventType names the live event for an order that reached s.
func EventType(s order.Status) string {
	if t, ok := getEventTypes()[s]; ok {
		return t
	}
	return EventOrderUpdate
}

// Event is the message sent to live sessions.
type Event struct {
	Type  string `json:"type"`
	Order any    `json:"order"`
}

// OrderPayload is the order as live sessions see it.
type OrderPayload struct {
	ID                int64     `json:"id"`
	OrderNumber       string    `json:"order_number"`
	RestaurantID      int64     `json:"restaurant_id"`
	CustomerName      string    `json:"customer_name"`
	DeliveryAddress   string    `json:"delivery_address"`
	DeliveryPartnerID *int64    `json:"delivery_partner_id"`
	Status            string    `json:"status"`
	ItemCount         int       `json:"item_count"`
	TotalAmount       string    `json:"total_amount"`
	PaymentMethod     string    `json:"payment_method"`
	RejectionReason   *string   `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewOrderPayload(s order.Snapshot) OrderPayload {
	return OrderPayload{
		ID:                s.ID,
		OrderNumber:       s.OrderNumber,
		RestaurantID:      s.RestaurantID,
		CustomerName:      s.CustomerName,
		DeliveryAddress:   s.DeliveryAddress,
		DeliveryPartnerID: s.DeliveryPartnerID,
		Status:            s.Status.String(),
		ItemCount:         s.ItemCount(),
		TotalAmount:       s.Total.String(),
		PaymentMethod:     s.PaymentMethod,
		RejectionReason:   s.RejectionReason,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
