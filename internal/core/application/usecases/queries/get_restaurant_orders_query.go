package queries

import (
	"errors"
	"fmt"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/guard"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
)

// GetRestaurantOrdersQuery lists the orders of the owner's restaurant that fall
// into one dashboard bucket.
//
// Example:
//
//	query, err := NewGetRestaurantOrdersQuery(ownerID, order.BucketOngoing)
//	handler := NewGetRestaurantOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
type GetRestaurantOrdersQuery struct {
	ownerID int64
	bucket  order.Bucket

	guard guard.ConstructorGuard
}

func NewGetRestaurantOrdersQuery(ownerID int64, bucket order.Bucket) (GetRestaurantOrdersQuery, error) {
	if ownerID <= 0 {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("owner_id",
			fmt.Errorf("%d is not greater than 0", ownerID))
	}
	if len(bucket.Statuses()) == 0 {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("bucket",
			fmt.Errorf("%q is not a valid bucket", bucket))
	}
	return GetRestaurantOrdersQuery{
		ownerID: ownerID,
		bucket:  bucket,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func (q GetRestaurantOrdersQuery) OwnerID() int64 {
	return q.ownerID
}

func (q GetRestaurantOrdersQuery) Bucket() order.Bucket {
	return q.bucket
}
