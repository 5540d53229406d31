package queries

import (
	"errors"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrGetOwnerRestaurantQueryIsNotConstructed = errors.New(
		"GetOwnerRestaurantQuery must be created via NewGetOwnerRestaurantQuery constructor",
	)
)

// GetOwnerRestaurantQuery resolves the restaurant an owner's live dashboard subscribes to.
type GetOwnerRestaurantQuery struct {
	ownerID int64

	guard guard.ConstructorGuard
}

func NewGetOwnerRestaurantQuery(ownerID int64) (GetOwnerRestaurantQuery, error) {
	if ownerID <= 0 {
		return GetOwnerRestaurantQuery{}, errs.NewValueIsInvalidErrorWithCause("owner_id",
			fmt.Errorf("%d is not greater than 0", ownerID))
	}
	return GetOwnerRestaurantQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOwnerRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerRestaurantQueryIsNotConstructed)
}

func (q GetOwnerRestaurantQuery) OwnerID() int64 {
	return q.ownerID
}
