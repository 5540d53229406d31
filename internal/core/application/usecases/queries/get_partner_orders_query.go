package queries

import (
	"errors"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
		"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
	)
)

// PartnerScope selects the orders of a delivery partner.
type PartnerScope string

const (
	// PartnerActive are orders the partner carries right now.
	PartnerActive PartnerScope = "active"
	// PartnerCompleted are orders the partner delivered.
	PartnerCompleted PartnerScope = "completed"
)

func (s PartnerScope) statuses() []order.Status {
	switch s {
	case PartnerActive:
		return []order.Status{order.PickedUp}
	case PartnerCompleted:
		return []order.Status{order.Delivered}
	default:
		return nil
	}
}

type GetPartnerOrdersQuery struct {
	partnerID int64
	scope     PartnerScope

	guard guard.ConstructorGuard
}

func NewGetPartnerOrdersQuery(partnerID int64, scope PartnerScope) (GetPartnerOrdersQuery, error) {
	if partnerID <= 0 {
		return GetPartnerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("delivery_partner_id",
			fmt.Errorf("%d is not greater than 0", partnerID))
	}
	if len(scope.statuses()) == 0 {
		return GetPartnerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("scope",
			fmt.Errorf("%q is not active or completed", scope))
	}
	return GetPartnerOrdersQuery{
		partnerID: partnerID,
		scope:     scope,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

func (q GetPartnerOrdersQuery) PartnerID() int64 {
	return q.partnerID
}

func (q GetPartnerOrdersQuery) Scope() PartnerScope {
	return q.scope
}
