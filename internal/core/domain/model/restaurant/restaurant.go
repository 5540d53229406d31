// Package restaurant is the read-only view of restaurants and menu items that
// the order lifecycle needs: who owns a restaurant and what an item costs.
// Restaurant onboarding and menu editing live outside this service.
package restaurant

import (
	"fmt"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"
)

type Restaurant struct {
	id       int64
	ownerID  int64
	name     string
	isActive bool
}

func RestoreRestaurant(id, ownerID int64, name string, isActive bool) (Restaurant, error) {
	if id <= 0 {
		return Restaurant{}, errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not greater than 0", id))
	}
	if ownerID <= 0 {
		return Restaurant{}, errs.NewValueIsInvalidErrorWithCause("owner id", fmt.Errorf("%d is not greater than 0", ownerID))
	}
	return Restaurant{id: id, ownerID: ownerID, name: strings.TrimSpace(name), isActive: isActive}, nil
}

func (r Restaurant) ID() int64 {
	return r.id
}

func (r Restaurant) OwnerID() int64 {
	return r.ownerID
}

func (r Restaurant) Name() string {
	return r.name
}

// IsActive reports whether the restaurant currently accepts orders.
func (r Restaurant) IsActive() bool {
	return r.isActive
}

func (r Restaurant) IsOwnedBy(ownerID int64) bool {
	return r.ownerID == ownerID
}

// MenuItem is the priced item a customer orders.
type MenuItem struct {
	id            int64
	restaurantID  int64
	name          string
	price         kernel.Money
	discountPrice kernel.Money
	isAvailable   bool
}

func RestoreMenuItem(id, restaurantID int64, name string, price, discountPrice kernel.Money, isAvailable bool) (MenuItem, error) {
	if id <= 0 {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", id))
	}
	if restaurantID <= 0 {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not greater than 0", restaurantID))
	}
	return MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		discountPrice: discountPrice,
		isAvailable:   isAvailable,
	}, nil
}

func (m MenuItem) ID() int64 {
	return m.id
}

func (m MenuItem) RestaurantID() int64 {
	return m.restaurantID
}

func (m MenuItem) Name() string {
	return m.name
}

func (m MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// EffectivePrice is the discount price when one is set, the list price otherwise.
func (m MenuItem) EffectivePrice() kernel.Money {
	if !m.discountPrice.IsZero() {
		return m.discountPrice
	}
	return m.price
}
