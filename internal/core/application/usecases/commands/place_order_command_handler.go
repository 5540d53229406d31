package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/services"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/metrics"

	"go.uber.org/zap"
)

// maxOrderNumberAttempts bounds the retries after an order number collision.
const maxOrderNumberAttempts = 3

// PlaceOrderCommandHandler creates an order in status new from a customer's
// checkout. Prices come from the menu at placement time and are frozen on the
// order lines. The owner is notified and the restaurant's live sessions receive
// the order after the commit.
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	calculator  services.ChargeCalculator
	notifier    ports.Notifier
	broadcaster ports.Broadcaster
	newNumber   func() (string, error)
	logger      *zap.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	calculator services.ChargeCalculator,
	notifier ports.Notifier,
	broadcaster ports.Broadcaster,
	logger *zap.Logger,
) PlaceOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		calculator:  calculator,
		notifier:    notifier,
		broadcaster: broadcaster,
		newNumber:   order.NewOrderNumber,
		logger:      logger,
	}
}

// WithNumberGenerator replaces the order number source.
func (h PlaceOrderCommandHandler) WithNumberGenerator(gen func() (string, error)) PlaceOrderCommandHandler {
	h.newNumber = gen
	return h
}

// Handle places the order. A number collision is retried with a fresh number
// in a new transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		snapshot, ownerID, err := h.place(ctx, cmd)
		if errors.Is(err, ports.ErrDuplicateOrderNumber) {
			h.logger.Warn("order number collision", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return order.Snapshot{}, err
		}

		metrics.OrdersPlacedTotal.Inc()
		h.logger.Info("order placed",
			zap.Int64("order_id", snapshot.ID),
			zap.String("order_number", snapshot.OrderNumber),
			zap.Int64("restaurant_id", snapshot.RestaurantID))

		if h.notifier != nil {
			h.notifier.OrderStatusChanged(ctx, snapshot, ownerID)
		}
		if h.broadcaster != nil {
			h.broadcaster.BroadcastOrder(ctx, snapshot)
		}
		return snapshot, nil
	}

	return order.Snapshot{}, errs.NewStorageUnavailableError("allocate order number", ports.ErrDuplicateOrderNumber)
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (order.Snapshot, int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Snapshot{}, 0, storageError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	orderRepo := uow.OrderRepository()

	r, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return order.Snapshot{}, 0, storageError("load restaurant", err)
	}
	if !r.IsActive() {
		return order.Snapshot{}, 0, errs.NewValueIsInvalidErrorWithCause("restaurant_id",
			fmt.Errorf("restaurant %d is not accepting orders", r.ID()))
	}

	lines := make([]order.Line, 0, len(cmd.items))
	for _, item := range cmd.items {
		menuItem, err := restaurantRepo.GetMenuItem(ctx, r.ID(), item.MenuItemID)
		if err != nil {
			return order.Snapshot{}, 0, storageError("load menu item", err)
		}
		if !menuItem.IsAvailable() {
			return order.Snapshot{}, 0, errs.NewValueIsInvalidErrorWithCause("menu_item_id",
				fmt.Errorf("%s is not available", menuItem.Name()))
		}
		line, err := order.NewLine(menuItem.ID(), item.Quantity, menuItem.EffectivePrice(), item.Instructions)
		if err != nil {
			return order.Snapshot{}, 0, err
		}
		lines = append(lines, line)
	}

	charges, err := h.calculator.Calculate(lines)
	if err != nil {
		return order.Snapshot{}, 0, err
	}

	number, err := h.newNumber()
	if err != nil {
		return order.Snapshot{}, 0, err
	}

	customerID := cmd.customerID
	o, err := order.NewOrder(number, order.Details{
		RestaurantID:        r.ID(),
		CustomerID:          &customerID,
		CustomerName:        cmd.customerName,
		CustomerPhone:       cmd.customerPhone,
		DeliveryAddress:     cmd.deliveryAddress,
		PaymentMethod:       cmd.paymentMethod,
		SpecialInstructions: cmd.specialInstructions,
	}, lines, charges, time.Now())
	if err != nil {
		return order.Snapshot{}, 0, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		if errors.Is(err, ports.ErrDuplicateOrderNumber) {
			return order.Snapshot{}, 0, err
		}
		return order.Snapshot{}, 0, storageError("add order "+strconv.Quote(number), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, 0, storageError("commit transaction", err)
	}

	return o.Snapshot(), r.OwnerID(), nil
}
