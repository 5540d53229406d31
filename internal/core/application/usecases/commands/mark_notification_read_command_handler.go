package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler flips the read flag of a notification.
// Notifications of other recipients are reported as not found.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return storageError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return storageError("load notification", err)
	}
	if !n.BelongsTo(cmd.Recipient()) {
		return notFound("notification", cmd.NotificationID())
	}
	if n.IsRead() {
		return nil
	}

	n.MarkRead()
	if err = repo.Update(ctx, n); err != nil {
		return storageError("save notification", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}
