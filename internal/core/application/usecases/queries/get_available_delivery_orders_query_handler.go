package queries

import (
	"context"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAvailableDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableDeliveryOrdersQueryHandler(db *gorm.DB) GetAvailableDeliveryOrdersQueryHandler {
	return GetAvailableDeliveryOrdersQueryHandler{db: db}
}

// Handle returns claimable orders, the longest waiting first.
func (h GetAvailableDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveryOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+summaryColumns+summaryFrom+`
		WHERE o.status IN ?
		  AND o.delivery_partner_id IS NULL
		ORDER BY o.created_at, o.id
		LIMIT ?
	`, statusStrings([]order.Status{order.Ready, order.Released}), ListLimit).Rows()
	if err != nil {
		return nil, queryError("list available orders", err)
	}

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, queryError("list available orders", err)
	}
	return summaries, nil
}
