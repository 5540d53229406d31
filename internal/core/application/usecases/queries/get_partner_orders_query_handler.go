package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle lists the partner's orders, most recently updated first.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+summaryColumns+summaryFrom+`
		WHERE o.delivery_partner_id = ?
		  AND o.status IN ?
		ORDER BY o.updated_at DESC, o.id DESC
		LIMIT ?
	`, query.PartnerID(), statusStrings(query.Scope().statuses()), ListLimit).Rows()
	if err != nil {
		return nil, queryError("list partner orders", err)
	}

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, queryError("list partner orders", err)
	}
	return summaries, nil
}
