package commands

import (
	"context"
)

type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewPurgeReadNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of removed notifications.
func (h PurgeReadNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeReadNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, storageError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.NotificationRepository().DeleteReadBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, storageError("delete read notifications", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, storageError("commit transaction", err)
	}
	return removed, nil
}
