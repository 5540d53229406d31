package commands

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/metrics"

	"go.uber.org/zap"
)

// TransitionOrderCommandHandler is the status transition engine. It is the only
// code path that changes an order's status.
//
// Flow:
//   - lock the order row and load the restaurant in one transaction
//   - check that an owner acts on their own restaurant's order
//   - apply the transition to the aggregate (edge, role and claim rules)
//   - store it conditionally on the status that was read, then commit
//   - after the commit, hand the new state to the notifier and the broadcaster
//
// Side effects never fail the transition. Errors from storage come back as
// errs.ErrStorageUnavailable and mean nothing was written.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, fanout, hub, logger)
//	cmd, _ := NewTransitionOrderCommand(42, order.PickedUp, partner, "")
//	snapshot, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAlreadyAssigned):
//	    // another partner claimed the order first
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // err.Error() names the current status
//	}
type TransitionOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    ports.Notifier
	broadcaster ports.Broadcaster
	logger      *zap.Logger
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	broadcaster ports.Broadcaster,
	logger *zap.Logger,
) TransitionOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return TransitionOrderCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Handle performs the transition and returns the committed order state.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	snapshot, ownerID, err := h.transition(ctx, cmd)
	metrics.OrderTransitionsTotal.WithLabelValues(cmd.Target().String(), outcomeOf(err)).Inc()
	if err != nil {
		h.logger.Debug("order transition refused",
			zap.Int64("order_id", cmd.OrderID()),
			zap.Stringer("target", cmd.Target()),
			zap.Stringer("actor", cmd.Actor()),
			zap.Error(err))
		return order.Snapshot{}, err
	}

	h.logger.Info("order transitioned",
		zap.Int64("order_id", snapshot.ID),
		zap.String("order_number", snapshot.OrderNumber),
		zap.Stringer("status", snapshot.Status),
		zap.String("timestamp_field", snapshot.Status.TimestampField()),
		zap.Stringer("actor", cmd.Actor()))

	if h.notifier != nil {
		h.notifier.OrderStatusChanged(ctx, snapshot, ownerID)
	}
	if h.broadcaster != nil {
		h.broadcaster.BroadcastOrder(ctx, snapshot)
	}
	return snapshot, nil
}

func (h TransitionOrderCommandHandler) transition(ctx context.Context, cmd TransitionOrderCommand) (order.Snapshot, int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Snapshot{}, 0, storageError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	restaurantRepo := uow.RestaurantRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Snapshot{}, 0, storageError("load order", err)
	}

	r, err := restaurantRepo.Get(ctx, o.RestaurantID())
	if err != nil {
		return order.Snapshot{}, 0, storageError("load restaurant", err)
	}

	actor := cmd.Actor()
	if actor.Is(kernel.Owner) && !r.IsOwnedBy(actor.ID()) {
		// Orders of other restaurants are invisible to an owner.
		return order.Snapshot{}, 0, notFound("order", cmd.OrderID())
	}

	previous := o.Status()
	if err = o.Apply(cmd.Target(), actor, cmd.RejectionReason(), time.Now()); err != nil {
		return order.Snapshot{}, 0, err
	}

	if err = orderRepo.Update(ctx, o, previous); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return order.Snapshot{}, 0, lostRace(cmd, previous, err)
		}
		return order.Snapshot{}, 0, storageError("save order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, 0, storageError("commit transaction", err)
	}

	return o.Snapshot(), r.OwnerID(), nil
}

// lostRace reports a compare-and-set miss: another writer changed the order
// between the read and the write. For a claim that writer was another partner.
func lostRace(cmd TransitionOrderCommand, previous order.Status, cause error) error {
	if cmd.Target() == order.PickedUp {
		return errs.NewAlreadyAssignedError("order", strconv.FormatInt(cmd.OrderID(), 10))
	}
	return errs.NewInvalidTransitionErrorWithCause(cmd.Target().String(), previous.String(), cause)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, errs.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrForbidden):
		return "forbidden"
	case errors.Is(err, errs.ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "invalid"
	}
}
