// Package restaurantrepo reads restaurants and menu items. The catalog is
// owned by another service; this package never writes it.
package restaurantrepo

import (
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID       int64  `gorm:"primaryKey"`
	OwnerID  int64  `gorm:"index"`
	Name     string `gorm:"size:255"`
	IsActive bool
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type MenuItemDTO struct {
	ID            int64 `gorm:"primaryKey"`
	RestaurantID  int64 `gorm:"index"`
	Name          string
	Price         decimal.Decimal     `gorm:"type:numeric(10,2)"`
	DiscountPrice decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	IsAvailable   bool
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantToDomain(dto RestaurantDTO) (restaurant.Restaurant, error) {
	return restaurant.RestoreRestaurant(dto.ID, dto.OwnerID, dto.Name, dto.IsActive)
}

func menuItemToDomain(dto MenuItemDTO) (restaurant.MenuItem, error) {
	price, err := kernel.MoneyFromDecimal(dto.Price)
	if err != nil {
		return restaurant.MenuItem{}, err
	}

	discount := kernel.ZeroMoney()
	if dto.DiscountPrice.Valid {
		if discount, err = kernel.MoneyFromDecimal(dto.DiscountPrice.Decimal); err != nil {
			return restaurant.MenuItem{}, err
		}
	}

	return restaurant.RestoreMenuItem(dto.ID, dto.RestaurantID, dto.Name, price, discount, dto.IsAvailable)
}
