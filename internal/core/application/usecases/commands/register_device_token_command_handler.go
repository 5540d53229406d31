package commands

import (
	"context"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
)

// RegisterDeviceTokenCommandHandler stores a push token for the caller.
// Registering a known token again reactivates it.
type RegisterDeviceTokenCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewRegisterDeviceTokenCommandHandler(uowFactory NotificationUoWFactory) RegisterDeviceTokenCommandHandler {
	return RegisterDeviceTokenCommandHandler{uowFactory: uowFactory}
}

func (h RegisterDeviceTokenCommandHandler) Handle(ctx context.Context, cmd RegisterDeviceTokenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	token, err := notification.NewDeviceToken(cmd.Recipient(), cmd.Token(), cmd.DeviceType(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return storageError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeviceTokenRepository().Upsert(ctx, token); err != nil {
		return storageError("save device token", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}
