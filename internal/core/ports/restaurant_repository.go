package ports

import (
	"context"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/restaurant"
)

// RestaurantRepository reads restaurants and menu prices. It never writes.
type RestaurantRepository interface {
	Get(ctx context.Context, id int64) (restaurant.Restaurant, error)

	// GetByOwner returns the restaurant an owner runs.
	GetByOwner(ctx context.Context, ownerID int64) (restaurant.Restaurant, error)

	// GetMenuItem returns an item of the given restaurant; items of other
	// restaurants are reported as not found.
	GetMenuItem(ctx context.Context, restaurantID, itemID int64) (restaurant.MenuItem, error)
}
