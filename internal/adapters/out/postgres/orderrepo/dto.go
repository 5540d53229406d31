// Package orderrepo persists order aggregates and their lines.
package orderrepo

import (
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Status is stored by name.
type OrderDTO struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement"`
	OrderNumber         string          `gorm:"size:32;uniqueIndex:uq_orders_order_number"`
	RestaurantID        int64           `gorm:"index"`
	CustomerID          *int64          `gorm:"index"`
	DeliveryPartnerID   *int64          `gorm:"index"`
	CustomerName        string          `gorm:"size:255"`
	CustomerPhone       string          `gorm:"size:32"`
	DeliveryAddress     string          `gorm:"type:text"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(10,2)"`
	TaxAmount           decimal.Decimal `gorm:"type:numeric(10,2)"`
	DiscountAmount      decimal.Decimal `gorm:"type:numeric(10,2)"`
	PaymentMethod       string          `gorm:"size:32"`
	PaymentStatus       string          `gorm:"size:32"`
	SpecialInstructions string          `gorm:"type:text"`
	Status              string          `gorm:"size:32"`
	RejectionReason     *string         `gorm:"type:text"`
	AcceptedAt          *time.Time
	PreparingAt         *time.Time
	ReadyAt             *time.Time
	ReleasedAt          *time.Time
	PickedUpAt          *time.Time
	DeliveredAt         *time.Time
	RejectedAt          *time.Time
	CompletedAt         *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. Price is the unit price at order time.
type OrderItemDTO struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	OrderID             int64 `gorm:"index"`
	MenuItemID          int64
	Quantity            int
	Price               decimal.Decimal `gorm:"type:numeric(10,2)"`
	SpecialInstructions string          `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	items := make([]OrderItemDTO, 0, len(s.Lines))
	for _, l := range s.Lines {
		items = append(items, OrderItemDTO{
			OrderID:             s.ID,
			MenuItemID:          l.MenuItemID(),
			Quantity:            l.Quantity(),
			Price:               l.UnitPrice().Decimal(),
			SpecialInstructions: l.Instructions(),
		})
	}

	return OrderDTO{
		ID:                  s.ID,
		OrderNumber:         s.OrderNumber,
		RestaurantID:        s.RestaurantID,
		CustomerID:          s.CustomerID,
		DeliveryPartnerID:   s.DeliveryPartnerID,
		CustomerName:        s.CustomerName,
		CustomerPhone:       s.CustomerPhone,
		DeliveryAddress:     s.DeliveryAddress,
		TotalAmount:         s.Total.Decimal(),
		DeliveryFee:         s.DeliveryFee.Decimal(),
		TaxAmount:           s.Tax.Decimal(),
		DiscountAmount:      s.Discount.Decimal(),
		PaymentMethod:       s.PaymentMethod,
		PaymentStatus:       s.PaymentStatus,
		SpecialInstructions: s.SpecialInstructions,
		Status:              s.Status.String(),
		RejectionReason:     s.RejectionReason,
		AcceptedAt:          s.Timeline.AcceptedAt,
		PreparingAt:         s.Timeline.PreparingAt,
		ReadyAt:             s.Timeline.ReadyAt,
		ReleasedAt:          s.Timeline.ReleasedAt,
		PickedUpAt:          s.Timeline.PickedUpAt,
		DeliveredAt:         s.Timeline.DeliveredAt,
		RejectedAt:          s.Timeline.RejectedAt,
		CompletedAt:         s.Timeline.CompletedAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
		Items:               items,
	}
}

// lifecycleColumns are the columns a status transition may change.
func lifecycleColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"delivery_partner_id": dto.DeliveryPartnerID,
		"payment_status":      dto.PaymentStatus,
		"status":              dto.Status,
		"rejection_reason":    dto.RejectionReason,
		"accepted_at":         dto.AcceptedAt,
		"preparing_at":        dto.PreparingAt,
		"ready_at":            dto.ReadyAt,
		"released_at":         dto.ReleasedAt,
		"picked_up_at":        dto.PickedUpAt,
		"delivered_at":        dto.DeliveredAt,
		"rejected_at":         dto.RejectedAt,
		"completed_at":        dto.CompletedAt,
		"updated_at":          dto.UpdatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		price, priceErr := kernel.MoneyFromDecimal(item.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLine(item.MenuItemID, item.Quantity, price, item.SpecialInstructions)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	charges, err := chargesFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                  dto.ID,
		OrderNumber:         dto.OrderNumber,
		RestaurantID:        dto.RestaurantID,
		CustomerID:          dto.CustomerID,
		DeliveryPartnerID:   dto.DeliveryPartnerID,
		CustomerName:        dto.CustomerName,
		CustomerPhone:       dto.CustomerPhone,
		DeliveryAddress:     dto.DeliveryAddress,
		Lines:               lines,
		Total:               charges.Total,
		DeliveryFee:         charges.DeliveryFee,
		Tax:                 charges.Tax,
		Discount:            charges.Discount,
		PaymentMethod:       dto.PaymentMethod,
		PaymentStatus:       dto.PaymentStatus,
		SpecialInstructions: dto.SpecialInstructions,
		Status:              status,
		Timeline: order.Timeline{
			AcceptedAt:  dto.AcceptedAt,
			PreparingAt: dto.PreparingAt,
			ReadyAt:     dto.ReadyAt,
			PickedUpAt:  dto.PickedUpAt,
			ReleasedAt:  dto.ReleasedAt,
			DeliveredAt: dto.DeliveredAt,
			RejectedAt:  dto.RejectedAt,
			CompletedAt: dto.CompletedAt,
		},
		RejectionReason: dto.RejectionReason,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func chargesFromDTO(dto OrderDTO) (order.Charges, error) {
	total, err := kernel.MoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return order.Charges{}, err
	}
	fee, err := kernel.MoneyFromDecimal(dto.DeliveryFee)
	if err != nil {
		return order.Charges{}, err
	}
	tax, err := kernel.MoneyFromDecimal(dto.TaxAmount)
	if err != nil {
		return order.Charges{}, err
	}
	discount, err := kernel.MoneyFromDecimal(dto.DiscountAmount)
	if err != nil {
		return order.Charges{}, err
	}
	return order.Charges{Total: total, DeliveryFee: fee, Tax: tax, Discount: discount}, nil
}
