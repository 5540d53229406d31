package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery is the customer-facing progress view of one order.
type TrackOrderQuery struct {
	orderID    int64
	customerID int64

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(orderID, customerID int64) (TrackOrderQuery, error) {
	var problems []error
	if orderID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", orderID)))
	}
	if customerID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("customer_id",
			fmt.Errorf("%d is not greater than 0", customerID)))
	}
	if err := errors.Join(problems...); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q TrackOrderQuery) CustomerID() int64 {
	return q.customerID
}

// TrackingStep is one milestone of the delivery.
type TrackingStep struct {
	Title       string
	Subtitle    string
	At          *time.Time
	IsCompleted bool
	IsCurrent   bool
}

// OrderTracking is the response of TrackOrderQuery.
type OrderTracking struct {
	OrderID           int64
	OrderNumber       string
	RestaurantName    string
	Status            order.Status
	DeliveryPartnerID *int64
	Steps             []TrackingStep
	Items             []OrderItemView
	Subtotal          kernel.Money
	DeliveryFee       kernel.Money
	Tax               kernel.Money
	Discount          kernel.Money
	Total             kernel.Money
}

type trackingMilestone struct {
	title    string
	subtitle string
	status   order.Status
}

func getTrackingMilestones() []trackingMilestone {
	return []trackingMilestone{
		{"Order Confirmed", "Your order has been confirmed by the restaurant", order.Accepted},
		{"Preparing", "Restaurant is preparing your delicious food", order.Preparing},
		{"Handed Over to Partner", "Order released and moving to you", order.Released},
		{"Out for Delivery", "Your order is on the way", order.PickedUp},
		{"Delivered", "Enjoy your meal!", order.Delivered},
	}
}

// currentMilestone maps a status to the index of the milestone in progress.
// Ready has no milestone of its own and stays on Preparing. Orders that have
// not started or were stopped have no current milestone.
func currentMilestone(s order.Status) int {
	//nolint:exhaustive // other statuses have no current milestone
	switch s {
	case order.Accepted:
		return 0
	case order.Preparing, order.Ready:
		return 1
	case order.Released:
		return 2
	case order.PickedUp:
		return 3
	case order.Delivered:
		return 4
	default:
		return -1
	}
}

func buildTrackingSteps(status order.Status, tl order.Timeline) []TrackingStep {
	current := currentMilestone(status)
	milestones := getTrackingMilestones()
	steps := make([]TrackingStep, 0, len(milestones))
	for i, m := range milestones {
		at := tl.At(m.status)
		steps = append(steps, TrackingStep{
			Title:       m.title,
			Subtitle:    m.subtitle,
			At:          at,
			IsCompleted: at != nil,
			IsCurrent:   i == current,
		})
	}
	return steps
}
