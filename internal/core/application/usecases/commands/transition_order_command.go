package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move one order to a target status on behalf of an actor.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(42, order.Rejected, owner, "kitchen closed")
//	if err != nil {
//	    return err // reason missing, bad id or unknown status
//	}
//	snapshot, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	target          order.Status
	actor           kernel.Actor
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand validates the request before any storage access:
// a rejection without a reason never reaches the database.
func NewTransitionOrderCommand(orderID int64, target order.Status, actor kernel.Actor, rejectionReason string) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}
	if err := cmd.setRejectionReason(rejectionReason); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// RejectionReason is empty unless the target is order.Rejected.
func (c TransitionOrderCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *TransitionOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.New {
		return errs.NewValueIsInvalidErrorWithCause("target status", errors.New("new is never a target"))
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setRejectionReason(reason string) error {
	if c.target != order.Rejected {
		return nil
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection_reason")
	}
	c.rejectionReason = reason
	return nil
}
