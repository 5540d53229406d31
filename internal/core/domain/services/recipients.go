package services

import (
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
)

// Recipients lists who is notified about s reaching its current status:
//   - the customer, when the order has one (not for New, the customer placed it)
//   - the restaurant owner, always
//   - the delivery partner, on pickup and delivery
//
// Ids that are not positive are skipped.
func Recipients(s order.Snapshot, ownerID int64) []notification.Recipient {
	var out []notification.Recipient

	if s.CustomerID != nil && s.Status != order.New {
		if r, err := notification.CustomerRecipient(*s.CustomerID); err == nil {
			out = append(out, r)
		}
	}
	if r, err := notification.OwnerRecipient(ownerID); err == nil {
		out = append(out, r)
	}
	if s.DeliveryPartnerID != nil && (s.Status == order.PickedUp || s.Status == order.Delivered) {
		if r, err := notification.PartnerRecipient(*s.DeliveryPartnerID); err == nil {
			out = append(out, r)
		}
	}
	return out
}
