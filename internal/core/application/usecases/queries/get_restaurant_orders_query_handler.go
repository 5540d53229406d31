package queries

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler serves the restaurant dashboard lists.
// New and ongoing orders come oldest first so the kitchen works in arrival
// order; completed orders come newest first and are capped.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurantID, err := restaurantOfOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return nil, queryError("find restaurant", err)
	}

	sqlText := `SELECT` + summaryColumns + summaryFrom + `
		WHERE o.restaurant_id = ? AND o.status IN ?`
	args := []any{restaurantID, statusStrings(query.Bucket().Statuses())}

	if limit := query.Bucket().Limit(); limit > 0 {
		sqlText += ` ORDER BY o.created_at DESC, o.id DESC LIMIT ?`
		args = append(args, limit)
	} else {
		sqlText += ` ORDER BY o.created_at, o.id`
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, queryError("list restaurant orders", err)
	}

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, queryError("list restaurant orders", err)
	}
	return summaries, nil
}

// restaurantOfOwner resolves the restaurant an owner runs.
func restaurantOfOwner(ctx context.Context, db *gorm.DB, ownerID int64) (int64, error) {
	var restaurantID int64
	err := db.WithContext(ctx).Raw(`
		SELECT id
		FROM restaurants
		WHERE owner_id = ?
		ORDER BY id
		LIMIT 1
	`, ownerID).Row().Scan(&restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.NewObjectNotFoundError("restaurant of owner", strconv.FormatInt(ownerID, 10))
	}
	return restaurantID, err
}
