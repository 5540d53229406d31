// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for one screen and never go through the
// order aggregate.
package queries

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ListLimit caps lists that grow without bound.
const ListLimit = 50

// OrderSummary is one row of an order list.
type OrderSummary struct {
	ID              int64
	OrderNumber     string
	RestaurantID    int64
	RestaurantName  string
	CustomerName    string
	DeliveryAddress string
	ItemCount       int
	Total           kernel.Money
	PaymentMethod   string
	Status          order.Status
	CreatedAt       time.Time
}

// summaryColumns selects the OrderSummary columns from orders o joined with restaurants r.
const summaryColumns = `
		o.id,
		o.order_number,
		o.restaurant_id,
		r.name,
		o.customer_name,
		o.delivery_address,
		COALESCE((SELECT SUM(i.quantity) FROM order_items i WHERE i.order_id = o.id), 0),
		o.total_amount,
		o.payment_method,
		o.status,
		o.created_at`

const summaryFrom = `
	FROM orders o
	JOIN restaurants r ON r.id = o.restaurant_id`

func scanSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			s      OrderSummary
			total  decimal.Decimal
			status string
		)
		err := rows.Scan(
			&s.ID,
			&s.OrderNumber,
			&s.RestaurantID,
			&s.RestaurantName,
			&s.CustomerName,
			&s.DeliveryAddress,
			&s.ItemCount,
			&total,
			&s.PaymentMethod,
			&status,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if s.Total, err = kernel.MoneyFromDecimal(total); err != nil {
			return nil, err
		}
		if s.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

// queryError keeps domain errors and marks everything else as a storage failure.
func queryError(operation string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrValueIsInvalid):
		return err
	}
	return errs.NewStorageUnavailableError(operation, err)
}

func orderNotFound(id int64) error {
	return errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
}
