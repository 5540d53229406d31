// Package postgres provides the GORM-based Unit of Work over the order,
// restaurant, notification and device token repositories.
//
// A unit of work wraps one database transaction. Repositories handed out
// after Begin run inside that transaction; before Begin they use the plain
// connection.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... change o
//	if err = uow.OrderRepository().Update(ctx, o, previous); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork instance.
package postgres

import (
	"context"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres/notificationrepo"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling it again while a transaction is open
// does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction. Without one, for example after a
// successful Commit, it returns nil so it can always be deferred.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

func (uow *GormUnitOfWork) DeviceTokenRepository() ports.DeviceTokenRepository {
	return notificationrepo.NewGormDeviceTokenRepository(uow.conn())
}

// conn is the open transaction, or the pool when there is none.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
