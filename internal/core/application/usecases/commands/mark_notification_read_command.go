package commands

import (
	"errors"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

type MarkNotificationReadCommand struct {
	notificationID int64
	recipient      notification.Recipient

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(notificationID int64, recipient notification.Recipient) (MarkNotificationReadCommand, error) {
	if notificationID <= 0 {
		return MarkNotificationReadCommand{}, errs.NewValueIsInvalidErrorWithCause("notification_id",
			fmt.Errorf("%d is not greater than 0", notificationID))
	}
	if recipient.IsZero() {
		return MarkNotificationReadCommand{}, errs.NewValueIsRequiredError("recipient")
	}
	return MarkNotificationReadCommand{
		notificationID: notificationID,
		recipient:      recipient,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) NotificationID() int64 {
	return c.notificationID
}

func (c MarkNotificationReadCommand) Recipient() notification.Recipient {
	return c.recipient
}
