package queries

import (
	"errors"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
)

// ListNotificationsQuery returns the latest notifications of one recipient.
type ListNotificationsQuery struct {
	recipient notification.Recipient

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(recipient notification.Recipient) (ListNotificationsQuery, error) {
	if recipient.IsZero() {
		return ListNotificationsQuery{}, errs.NewValueIsRequiredError("recipient")
	}
	return ListNotificationsQuery{
		recipient: recipient,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Recipient() notification.Recipient {
	return q.recipient
}

type NotificationView struct {
	ID        int64
	Title     string
	Message   string
	Kind      notification.Kind
	OrderID   *int64
	IsRead    bool
	CreatedAt time.Time
}
