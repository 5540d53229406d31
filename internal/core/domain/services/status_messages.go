package services

import (
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
)

// Message is the text of one notification.
type Message struct {
	Title string
	Body  string
	Kind  notification.Kind
}

// StatusMessage returns the notification text for an order that just reached
// its current status, worded for the role that receives it.
//
// Titles always read "Order #<number> <Event>" so clients can match them to an
// order. Rejections carry the owner's reason in the body.
func StatusMessage(s order.Snapshot, role kernel.Role) Message {
	number := s.OrderNumber

	//nolint:exhaustive // Unknown falls through to the generic update
	switch s.Status {
	case order.New:
		return Message{
			Title: fmt.Sprintf("New Order #%s Received!", number),
			Body:  fmt.Sprintf("You have a new order #%s from %s.", number, customerName(s)),
			Kind:  notification.KindNewOrder,
		}
	case order.Accepted:
		return update(number, "Accepted", byRole(role,
			"The restaurant has accepted your order.",
			fmt.Sprintf("You accepted order #%s.", number)))
	case order.Preparing:
		return update(number, "Preparing", byRole(role,
			"The restaurant is preparing your order.",
			fmt.Sprintf("Order #%s is being prepared.", number)))
	case order.Ready:
		return update(number, "Ready", byRole(role,
			"Your order is ready and waiting for a delivery partner.",
			fmt.Sprintf("Order #%s is ready for pickup.", number)))
	case order.Released:
		return update(number, "Released", byRole(role,
			"Your order has been handed over for delivery.",
			fmt.Sprintf("Order #%s was released for delivery.", number)))
	case order.PickedUp:
		switch role {
		case kernel.Owner:
			return update(number, "Picked Up", "A delivery partner has picked up the order.")
		case kernel.DeliveryPartner:
			return update(number, "Picked Up", fmt.Sprintf("You picked up order #%s. Deliver it to %s.", number, s.DeliveryAddress))
		default:
			return update(number, "Picked Up", "A delivery partner is on the way with your order!")
		}
	case order.Delivered:
		switch role {
		case kernel.Owner:
			return update(number, "Delivered", "Order has been successfully delivered to the customer.")
		case kernel.DeliveryPartner:
			return update(number, "Delivered", fmt.Sprintf("Order #%s is marked as delivered.", number))
		default:
			return update(number, "Delivered", "Your order has been delivered. Enjoy your meal!")
		}
	case order.Rejected:
		reason := ""
		if s.RejectionReason != nil {
			reason = *s.RejectionReason
		}
		return update(number, "Rejected", "Order rejected: "+reason)
	case order.Cancelled:
		return update(number, "Cancelled", fmt.Sprintf("Order #%s has been cancelled.", number))
	default:
		return update(number, "Updated", fmt.Sprintf("Order #%s is now %s.", number, s.Status))
	}
}

func update(number, event, body string) Message {
	return Message{
		Title: fmt.Sprintf("Order #%s %s", number, event),
		Body:  body,
		Kind:  notification.KindOrderUpdate,
	}
}

func byRole(role kernel.Role, customerText, otherText string) string {
	if role == kernel.Customer {
		return customerText
	}
	return otherText
}

func customerName(s order.Snapshot) string {
	if s.CustomerName == "" {
		return "Guest"
	}
	return s.CustomerName
}
