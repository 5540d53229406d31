package notification

import (
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Recipient addresses one person of one role.
type Recipient struct {
	role kernel.Role
	id   int64
}

func NewRecipient(role kernel.Role, id int64) (Recipient, error) {
	switch role {
	case kernel.Owner, kernel.Customer, kernel.DeliveryPartner:
	default:
		return Recipient{}, errs.NewValueIsInvalidErrorWithCause("recipient role",
			fmt.Errorf("%s cannot receive notifications", role))
	}
	if id <= 0 {
		return Recipient{}, errs.NewValueIsInvalidErrorWithCause("recipient id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	return Recipient{role: role, id: id}, nil
}

// RecipientFromActor addresses the authenticated caller. System actors have no feed.
func RecipientFromActor(a kernel.Actor) (Recipient, error) {
	return NewRecipient(a.Role(), a.ID())
}

func OwnerRecipient(ownerID int64) (Recipient, error) {
	return NewRecipient(kernel.Owner, ownerID)
}

func CustomerRecipient(customerID int64) (Recipient, error) {
	return NewRecipient(kernel.Customer, customerID)
}

func PartnerRecipient(partnerID int64) (Recipient, error) {
	return NewRecipient(kernel.DeliveryPartner, partnerID)
}

func (r Recipient) Role() kernel.Role {
	return r.role
}

func (r Recipient) ID() int64 {
	return r.id
}

func (r Recipient) IsZero() bool {
	return r.role == kernel.UnknownRole && r.id == 0
}

func (r Recipient) String() string {
	return fmt.Sprintf("%s:%d", r.role, r.id)
}
