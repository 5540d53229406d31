package cmd

import (
	"context"
	"errors"
	"fmt"

	httpin "github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/in/http"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/fcm"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/redisrelay"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/fanout"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/commands"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/application/usecases/queries"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/services"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/jobs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/live"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	fanout *fanout.Fanout
	hub    *live.Hub
	relay  *redisrelay.Relay
	redis  *redis.Client
}

// NewCompositionRoot builds the long-lived components. When REDIS_URL is set
// live events are relayed to the other instances.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hub:        live.NewHub(live.DefaultSendTimeout, logger),
	}

	pusher, err := c.newPusher(ctx)
	if err != nil {
		return nil, err
	}
	c.fanout = fanout.New(c.notificationUoWFactory(), pusher, fanout.Config{PushTimeout: cfg.PushTimeout}, logger)

	if cfg.RedisURL != "" {
		if err = c.startRelay(ctx); err != nil {
			_ = c.fanout.Close(ctx)
			return nil, err
		}
	}
	return c, nil
}

func (c *CompositionRoot) newPusher(ctx context.Context) (ports.Pusher, error) {
	if c.cfg.FirebaseCredentialsFile == "" {
		c.logger.Warn("FIREBASE_CREDENTIALS_FILE is not set, push notifications are only logged")
		return fcm.NewLogPusher(c.logger), nil
	}
	pusher, err := fcm.New(ctx, c.cfg.FirebaseCredentialsFile, c.logger)
	if err != nil {
		return nil, err
	}
	return pusher, nil
}

func (c *CompositionRoot) startRelay(ctx context.Context) error {
	opts, err := redis.ParseURL(c.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse REDIS_URL: %w", err)
	}
	c.redis = redis.NewClient(opts)
	if err = c.redis.Ping(ctx).Err(); err != nil {
		_ = c.redis.Close()
		return fmt.Errorf("connect to redis: %w", err)
	}

	c.relay, err = redisrelay.New(c.redis, redisrelay.DefaultChannel, c.hub, c.logger)
	if err != nil {
		_ = c.redis.Close()
		return err
	}
	if err = c.relay.Start(ctx); err != nil {
		_ = c.redis.Close()
		return fmt.Errorf("start live relay: %w", err)
	}
	c.hub.SetPublisher(c.relay)
	return nil
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.fanout, c.hub, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.orderUoWFactory(), services.DefaultChargeCalculator(), c.fanout, c.hub, c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDeviceTokenCommandHandler() commands.RegisterDeviceTokenCommandHandler {
	return commands.NewRegisterDeviceTokenCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateHTTPRouter() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		TransitionOrder:      c.CreateTransitionOrderCommandHandler(),
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		RegisterDeviceToken:  c.CreateRegisterDeviceTokenCommandHandler(),
		RestaurantOrders:     queries.NewGetRestaurantOrdersQueryHandler(c.gormDB),
		AvailableOrders:      queries.NewGetAvailableDeliveryOrdersQueryHandler(c.gormDB),
		PartnerOrders:        queries.NewGetPartnerOrdersQueryHandler(c.gormDB),
		CustomerOrders:       queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		OrderDetails:         queries.NewGetOrderDetailsQueryHandler(c.gormDB),
		TrackOrder:           queries.NewTrackOrderQueryHandler(c.gormDB),
		Notifications:        queries.NewListNotificationsQueryHandler(c.gormDB),
		OwnerRestaurant:      queries.NewGetOwnerRestaurantQueryHandler(c.gormDB),
	}, c.hub, c.logger)
	return httpin.NewRouter(server, []byte(c.cfg.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.hub,
		c.cfg.LivePingSpec,
		c.CreatePurgeReadNotificationsCommandHandler(),
		c.cfg.NotificationRetentionDays,
		c.logger,
	)
}

// Close drains pending live events and notifications and disconnects live sessions.
func (c *CompositionRoot) Close(ctx context.Context) error {
	closeErrs := []error{c.hub.Close(ctx)}
	if c.relay != nil {
		closeErrs = append(closeErrs, c.relay.Close(), c.redis.Close())
	}
	c.hub.CloseAll()
	closeErrs = append(closeErrs, c.fanout.Close(ctx))
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
