package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/order"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/ports"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its lines and assigns the generated id.
// A taken order number yields ports.ErrDuplicateOrderNumber.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err, "uq_orders_order_number") {
			return fmt.Errorf("%w: %s", ports.ErrDuplicateOrderNumber, dto.OrderNumber)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update writes the lifecycle columns if the stored status still equals expected.
// Lines are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(lifecycleColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order",
			fmt.Errorf("order %d is no longer %s", dto.ID, expected))
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE until the
// surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, q *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := q.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Order("id").Find(&dto.Items, "order_id = ?", id).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == constraint
}
