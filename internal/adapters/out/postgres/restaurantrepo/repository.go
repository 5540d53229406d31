package restaurantrepo

import (
	"context"
	"errors"
	"strconv"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/restaurant"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id int64) (restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return restaurant.Restaurant{}, errs.NewObjectNotFoundError("restaurant", strconv.FormatInt(id, 10))
		}
		return restaurant.Restaurant{}, err
	}
	return restaurantToDomain(dto)
}

// GetByOwner returns the owner's first restaurant by id.
func (r *GormRestaurantRepository) GetByOwner(ctx context.Context, ownerID int64) (restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).Order("id").First(&dto, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return restaurant.Restaurant{}, errs.NewObjectNotFoundError("restaurant of owner", strconv.FormatInt(ownerID, 10))
		}
		return restaurant.Restaurant{}, err
	}
	return restaurantToDomain(dto)
}

func (r *GormRestaurantRepository) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (restaurant.MenuItem, error) {
	var dto MenuItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND restaurant_id = ?", itemID, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return restaurant.MenuItem{}, errs.NewObjectNotFoundError("menu item", strconv.FormatInt(itemID, 10))
		}
		return restaurant.MenuItem{}, err
	}
	return menuItemToDomain(dto)
}
