// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, then side effects that run after the commit.
package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	DeviceTokenRepoFactory interface {
		DeviceTokenRepository() ports.DeviceTokenRepository
	}

	// OrderUoW is used by commands that change orders. Restaurants are read in
	// the same transaction to check ownership and prices.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate o
	//   err = uow.OrderRepository().Update(ctx, o, previous)
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW is used by commands that touch the notification feed and device tokens.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
		DeviceTokenRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// storageError wraps infrastructure failures as StorageUnavailable.
// Not-found results are domain outcomes and pass through unchanged.
func storageError(operation string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return errs.NewStorageUnavailableError(operation, err)
}

func notFound(param string, id int64) error {
	return errs.NewObjectNotFoundError(param, strconv.FormatInt(id, 10))
}
