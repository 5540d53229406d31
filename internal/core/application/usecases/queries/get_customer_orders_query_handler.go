package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the latest orders of the customer, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+summaryColumns+summaryFrom+`
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, query.CustomerID(), ListLimit).Rows()
	if err != nil {
		return nil, queryError("list customer orders", err)
	}

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, queryError("list customer orders", err)
	}
	return summaries, nil
}
