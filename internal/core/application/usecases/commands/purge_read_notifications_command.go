package commands

import (
	"errors"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var ErrPurgeReadNotificationsCommandIsNotConstructed = errors.New(
	"PurgeReadNotificationsCommand must be created via NewPurgeReadNotificationsCommand constructor",
)

// PurgeReadNotificationsCommand removes read notifications older than a cutoff.
// Unread notifications are never purged.
type PurgeReadNotificationsCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgeReadNotificationsCommand(cutoff time.Time) (PurgeReadNotificationsCommand, error) {
	if cutoff.IsZero() {
		return PurgeReadNotificationsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	return PurgeReadNotificationsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReadNotificationsCommandIsNotConstructed)
}

func (c PurgeReadNotificationsCommand) Cutoff() time.Time {
	return c.cutoff
}
