package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOwnerRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetOwnerRestaurantQueryHandler(db *gorm.DB) GetOwnerRestaurantQueryHandler {
	return GetOwnerRestaurantQueryHandler{db: db}
}

// Handle returns the restaurant id; owners without one get ObjectNotFound.
func (h GetOwnerRestaurantQueryHandler) Handle(ctx context.Context, query GetOwnerRestaurantQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	restaurantID, err := restaurantOfOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return 0, queryError("resolve owner restaurant", err)
	}
	return restaurantID, nil
}
