// Package pgtest starts a migrated PostgreSQL container for integration tests
// and seeds the catalog tables the service only reads.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies the service migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres_adapter.Migrate(dsn, zap.NewNop()); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table and resets the id sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE device_tokens, notifications, order_items, orders, menu_items, restaurants
		RESTART IDENTITY CASCADE`).Error
}

func (d *Database) SeedRestaurant(ownerID int64, name string, isActive bool) (int64, error) {
	var id int64
	err := d.DB.Raw(`INSERT INTO restaurants (owner_id, name, is_active) VALUES (?, ?, ?) RETURNING id`,
		ownerID, name, isActive).Scan(&id).Error
	return id, err
}

// SeedMenuItem adds an item; an empty discount stores NULL.
func (d *Database) SeedMenuItem(restaurantID int64, name, price, discount string, isAvailable bool) (int64, error) {
	var discountValue any
	if discount != "" {
		discountValue = discount
	}

	var id int64
	err := d.DB.Raw(`INSERT INTO menu_items (restaurant_id, name, price, discount_price, is_available)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		restaurantID, name, price, discountValue, isAvailable).Scan(&id).Error
	return id, err
}

func (d *Database) Terminate(ctx context.Context) error {
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return d.Container.Terminate(ctx)
}
