package order

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

const (
	// DefaultPaymentMethod is used when the customer does not pick one.
	DefaultPaymentMethod = "cash_on_delivery"
	// PaymentStatusPending is the payment status of every new order.
	PaymentStatusPending = "pending"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsAlreadyAssigned is returned when storage tries to number an order twice.
	ErrOrderIDIsAlreadyAssigned = errors.New("order id is already assigned")
)

// Details are the caller-supplied attributes of a new order.
type Details struct {
	RestaurantID        int64
	CustomerID          *int64
	CustomerName        string
	CustomerPhone       string
	DeliveryAddress     string
	PaymentMethod       string
	SpecialInstructions string
}

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - it belongs to exactly one restaurant and has at least one line
//   - status changes only along the edges of Status
//   - the timeline holds one stamp per transition taken, strictly increasing
//   - the delivery partner is unset until a partner picks the order up and never changes afterwards
//   - a rejection reason exists only on rejected orders
type Order struct {
	id                  int64
	number              string
	restaurantID        int64
	customerID          *int64
	deliveryPartnerID   *int64
	customerName        string
	customerPhone       string
	deliveryAddress     string
	lines               []Line
	charges             Charges
	paymentMethod       string
	paymentStatus       string
	specialInstructions string
	status              Status
	timeline            Timeline
	rejectionReason     *string
	createdAt           time.Time
	updatedAt           time.Time
	isConstructed       bool
}

// NewOrder creates an order in status New. The id stays 0 until storage assigns one.
//
// Example:
//
//	number, _ := order.NewOrderNumber()
//	line, _ := order.NewLine(11, 2, kernel.MustNewMoney("120.00"), "")
//	o, err := order.NewOrder(number, order.Details{RestaurantID: 3, DeliveryAddress: "12 Park St"},
//	    []order.Line{line}, charges, time.Now())
func NewOrder(number string, details Details, lines []Line, charges Charges, now time.Time) (*Order, error) {
	paymentMethod := strings.TrimSpace(details.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	createdAt := normalizeTime(now)

	o := &Order{
		number:              number,
		restaurantID:        details.RestaurantID,
		customerID:          copyID(details.CustomerID),
		customerName:        strings.TrimSpace(details.CustomerName),
		customerPhone:       strings.TrimSpace(details.CustomerPhone),
		deliveryAddress:     strings.TrimSpace(details.DeliveryAddress),
		lines:               slices.Clone(lines),
		charges:             charges,
		paymentMethod:       paymentMethod,
		paymentStatus:       PaymentStatusPending,
		specialInstructions: details.SpecialInstructions,
		status:              New,
		createdAt:           createdAt,
		updatedAt:           createdAt,
		isConstructed:       true,
	}

	if err := o.validateContent(); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order from storage and re-checks every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", s.ID))
	}

	o := &Order{
		id:                  s.ID,
		number:              s.OrderNumber,
		restaurantID:        s.RestaurantID,
		customerID:          copyID(s.CustomerID),
		deliveryPartnerID:   copyID(s.DeliveryPartnerID),
		customerName:        s.CustomerName,
		customerPhone:       s.CustomerPhone,
		deliveryAddress:     s.DeliveryAddress,
		lines:               slices.Clone(s.Lines),
		charges:             s.Charges(),
		paymentMethod:       s.PaymentMethod,
		paymentStatus:       s.PaymentStatus,
		specialInstructions: s.SpecialInstructions,
		status:              s.Status,
		timeline:            s.Timeline.clone(),
		rejectionReason:     copyString(s.RejectionReason),
		createdAt:           normalizeTime(s.CreatedAt),
		updatedAt:           normalizeTime(s.UpdatedAt),
		isConstructed:       true,
	}

	if err := errors.Join(o.validateContent(), o.validateLifecycle()); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the id storage generated for a new order.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDIsAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// CustomerID returns nil for orders placed without a customer account.
func (o *Order) CustomerID() *int64 {
	return copyID(o.customerID)
}

// DeliveryPartnerID returns nil until a partner picks the order up.
func (o *Order) DeliveryPartnerID() *int64 {
	return copyID(o.deliveryPartnerID)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Timeline() Timeline {
	return o.timeline.clone()
}

func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Charges() Charges {
	return o.charges
}

// Subtotal is the sum of line totals before fees, tax and discount.
func (o *Order) Subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Total())
	}
	return total
}

func (o *Order) RejectionReason() *string {
	return copyString(o.rejectionReason)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Apply performs the transition to target on behalf of actor.
// Each target belongs to one role: the restaurant owner drives the kitchen
// steps, the delivery partner picks up and delivers, and only the system cancels.
// Restaurant ownership is checked by the caller, which can see the restaurant.
func (o *Order) Apply(target Status, actor kernel.Actor, reason string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	role, ok := getTransitionRoles()[target]
	if !ok {
		return errs.NewInvalidTransitionError(target.String(), o.status.String())
	}
	if actor.Role() != role {
		return errs.NewForbiddenError(fmt.Sprintf("%s may not move an order to %s", actor.Role(), target))
	}

	//nolint:exhaustive // getTransitionRoles covers the reachable targets
	switch target {
	case Accepted:
		return o.Accept(at)
	case Rejected:
		return o.Reject(reason, at)
	case Preparing:
		return o.StartPreparing(at)
	case Ready:
		return o.MarkReady(at)
	case Released:
		return o.Release(at)
	case PickedUp:
		return o.PickUp(actor.ID(), at)
	case Delivered:
		return o.Deliver(actor.ID(), at)
	default:
		return o.Cancel(at)
	}
}

// Accept confirms a new order.
func (o *Order) Accept(at time.Time) error {
	return o.moveTo(Accepted, at)
}

// Reject declines a new order. The reason is mandatory and checked before anything changes.
func (o *Order) Reject(reason string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection_reason")
	}
	if err := o.moveTo(Rejected, at); err != nil {
		return err
	}
	o.rejectionReason = &reason
	return nil
}

func (o *Order) StartPreparing(at time.Time) error {
	return o.moveTo(Preparing, at)
}

func (o *Order) MarkReady(at time.Time) error {
	return o.moveTo(Ready, at)
}

// Release records that the restaurant handed the order over without a partner claim.
func (o *Order) Release(at time.Time) error {
	return o.moveTo(Released, at)
}

// PickUp assigns partnerID to a ready or released order.
// A claim on an order another partner already holds fails with AlreadyAssigned,
// whatever the current status is.
func (o *Order) PickUp(partnerID int64, at time.Time) error {
	if partnerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery partner id",
			fmt.Errorf("%d is not greater than 0", partnerID))
	}
	if o.deliveryPartnerID != nil && *o.deliveryPartnerID != partnerID {
		return errs.NewAlreadyAssignedError("order", strconv.FormatInt(o.id, 10))
	}
	if err := o.moveTo(PickedUp, at); err != nil {
		return err
	}
	o.deliveryPartnerID = &partnerID
	return nil
}

// Deliver completes the order. Only the assigned partner may do it.
func (o *Order) Deliver(partnerID int64, at time.Time) error {
	if o.deliveryPartnerID == nil || *o.deliveryPartnerID != partnerID {
		return errs.NewForbiddenError("order is not assigned to this delivery partner")
	}
	return o.moveTo(Delivered, at)
}

func (o *Order) Cancel(at time.Time) error {
	return o.moveTo(Cancelled, at)
}

// Snapshot returns a deep copy of the order state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                  o.id,
		OrderNumber:         o.number,
		RestaurantID:        o.restaurantID,
		CustomerID:          copyID(o.customerID),
		DeliveryPartnerID:   copyID(o.deliveryPartnerID),
		CustomerName:        o.customerName,
		CustomerPhone:       o.customerPhone,
		DeliveryAddress:     o.deliveryAddress,
		Lines:               slices.Clone(o.lines),
		Total:               o.charges.Total,
		DeliveryFee:         o.charges.DeliveryFee,
		Tax:                 o.charges.Tax,
		Discount:            o.charges.Discount,
		PaymentMethod:       o.paymentMethod,
		PaymentStatus:       o.paymentStatus,
		SpecialInstructions: o.specialInstructions,
		Status:              o.status,
		Timeline:            o.timeline.clone(),
		RejectionReason:     copyString(o.rejectionReason),
		CreatedAt:           o.createdAt,
		UpdatedAt:           o.updatedAt,
	}
}

func (o *Order) moveTo(target Status, at time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = o.timeline.stamp(next, at, o.createdAt)
	return nil
}

func (o *Order) validateContent() error {
	var problems []error
	if err := ValidateOrderNumber(o.number); err != nil {
		problems = append(problems, err)
	}
	if o.restaurantID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not greater than 0", o.restaurantID)))
	}
	if o.customerID != nil && *o.customerID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%d is not greater than 0", *o.customerID)))
	}
	if o.deliveryAddress == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery address"))
	}
	if len(o.lines) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("order lines"))
	}
	for _, l := range o.lines {
		if err := l.Validate(); err != nil {
			problems = append(problems, err)
			break
		}
	}
	return errors.Join(problems...)
}

func (o *Order) validateLifecycle() error {
	if err := o.status.Validate(); err != nil {
		return err
	}
	if err := o.timeline.Validate(o.status, o.createdAt); err != nil {
		return err
	}
	if (o.deliveryPartnerID != nil) != (o.timeline.PickedUpAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause("delivery partner id",
			errors.New("a delivery partner is set exactly when the order was picked up"))
	}
	if (o.rejectionReason != nil) != (o.status == Rejected) {
		return errs.NewValueIsInvalidErrorWithCause("rejection_reason",
			errors.New("a rejection reason is set exactly on rejected orders"))
	}
	return nil
}

func getTransitionRoles() map[Status]kernel.Role {
	//nolint:exhaustive // New is never a target
	return map[Status]kernel.Role{
		Accepted:  kernel.Owner,
		Rejected:  kernel.Owner,
		Preparing: kernel.Owner,
		Ready:     kernel.Owner,
		Released:  kernel.Owner,
		PickedUp:  kernel.DeliveryPartner,
		Delivered: kernel.DeliveryPartner,
		Cancelled: kernel.System,
	}
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
