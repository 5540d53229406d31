package queries

import (
	"errors"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery is the customer's order history.
type GetCustomerOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customer_id",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}
