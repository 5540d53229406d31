package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	details, err := loadOrderDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderDetails{}, queryError("load order details", err)
	}

	if err = checkVisibility(details, query.Actor()); err != nil {
		return OrderDetails{}, err
	}
	return details, nil
}

func checkVisibility(d OrderDetails, actor kernel.Actor) error {
	switch actor.Role() {
	case kernel.System:
		return nil
	case kernel.Owner:
		if d.RestaurantOwnerID == actor.ID() {
			return nil
		}
	case kernel.Customer:
		if d.CustomerID != nil && *d.CustomerID == actor.ID() {
			return nil
		}
	case kernel.DeliveryPartner:
		if d.DeliveryPartnerID == nil || *d.DeliveryPartnerID == actor.ID() {
			return nil
		}
		return errs.NewForbiddenError("order is assigned to another delivery partner")
	case kernel.UnknownRole:
	}
	return orderNotFound(d.ID)
}

func loadOrderDetails(ctx context.Context, db *gorm.DB, orderID int64) (OrderDetails, error) {
	var (
		d                         OrderDetails
		total, fee, tax, discount decimal.Decimal
		status                    string
	)

	err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.restaurant_id,
			r.name,
			r.owner_id,
			o.customer_id,
			o.delivery_partner_id,
			o.customer_name,
			o.customer_phone,
			o.delivery_address,
			o.special_instructions,
			o.payment_method,
			o.payment_status,
			o.total_amount,
			o.delivery_fee,
			o.tax_amount,
			o.discount_amount,
			o.status,
			o.rejection_reason,
			o.accepted_at,
			o.preparing_at,
			o.ready_at,
			o.released_at,
			o.picked_up_at,
			o.delivered_at,
			o.rejected_at,
			o.completed_at,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, orderID).Row().Scan(
		&d.ID,
		&d.OrderNumber,
		&d.RestaurantID,
		&d.RestaurantName,
		&d.RestaurantOwnerID,
		&d.CustomerID,
		&d.DeliveryPartnerID,
		&d.CustomerName,
		&d.CustomerPhone,
		&d.DeliveryAddress,
		&d.SpecialInstructions,
		&d.PaymentMethod,
		&d.PaymentStatus,
		&total,
		&fee,
		&tax,
		&discount,
		&status,
		&d.RejectionReason,
		&d.Timeline.AcceptedAt,
		&d.Timeline.PreparingAt,
		&d.Timeline.ReadyAt,
		&d.Timeline.ReleasedAt,
		&d.Timeline.PickedUpAt,
		&d.Timeline.DeliveredAt,
		&d.Timeline.RejectedAt,
		&d.Timeline.CompletedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetails{}, orderNotFound(orderID)
	}
	if err != nil {
		return OrderDetails{}, err
	}

	if d.Status, err = order.ParseStatus(status); err != nil {
		return OrderDetails{}, err
	}
	amounts := []struct {
		dst *kernel.Money
		src decimal.Decimal
	}{
		{&d.Total, total}, {&d.DeliveryFee, fee}, {&d.Tax, tax}, {&d.Discount, discount},
	}
	for _, a := range amounts {
		if *a.dst, err = kernel.MoneyFromDecimal(a.src); err != nil {
			return OrderDetails{}, err
		}
	}

	if d.Items, err = loadOrderItems(ctx, db, orderID); err != nil {
		return OrderDetails{}, err
	}
	d.Subtotal = kernel.ZeroMoney()
	for _, item := range d.Items {
		d.ItemCount += item.Quantity
		d.Subtotal = d.Subtotal.Add(item.Total)
	}
	return d, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID int64) ([]OrderItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.menu_item_id,
			COALESCE(m.name, ''),
			i.quantity,
			i.price,
			i.special_instructions
		FROM order_items i
		LEFT JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			item  OrderItemView
			price decimal.Decimal
		)
		if err = rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &price, &item.Instructions); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.MoneyFromDecimal(price); err != nil {
			return nil, err
		}
		item.Total = item.Price.Times(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
