package notificationrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := notificationFromDomain(n)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	return n.AssignID(dto.ID)
}

func (r *GormNotificationRepository) Get(ctx context.Context, id int64) (*notification.Notification, error) {
	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return notificationToDomain(dto)
}

func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", n.ID()).
		Update("is_read", n.IsRead())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", strconv.FormatInt(n.ID(), 10))
	}
	return nil
}

func (r *GormNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read AND created_at < ?", cutoff).
		Delete(&NotificationDTO{})
	return result.RowsAffected, result.Error
}

// GormDeviceTokenRepository implements ports.DeviceTokenRepository using GORM.
type GormDeviceTokenRepository struct {
	db *gorm.DB
}

func NewGormDeviceTokenRepository(db *gorm.DB) *GormDeviceTokenRepository {
	return &GormDeviceTokenRepository{db: db}
}

// Upsert inserts the token or, when it is already known, moves it to the
// recipient and reactivates it.
func (r *GormDeviceTokenRepository) Upsert(ctx context.Context, t *notification.DeviceToken) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := DeviceTokenDTO{
		RecipientRole: t.Recipient().Role().String(),
		RecipientID:   t.Recipient().ID(),
		Token:         t.Token(),
		DeviceType:    string(t.DeviceType()),
		IsActive:      t.IsActive(),
		CreatedAt:     t.UpdatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"recipient_role", "recipient_id", "device_type", "is_active", "updated_at",
			}),
		}).
		Create(&dto).Error
}

func (r *GormDeviceTokenRepository) ListActive(ctx context.Context, recipient notification.Recipient) ([]*notification.DeviceToken, error) {
	var dtos []DeviceTokenDTO
	err := r.db.WithContext(ctx).
		Where("recipient_role = ? AND recipient_id = ? AND is_active", recipient.Role().String(), recipient.ID()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tokens := make([]*notification.DeviceToken, 0, len(dtos))
	for _, dto := range dtos {
		t, convErr := deviceTokenToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func (r *GormDeviceTokenRepository) Deactivate(ctx context.Context, token string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&DeviceTokenDTO{}).
		Where("token = ?", token).
		Updates(map[string]any{"is_active": false, "updated_at": at.UTC()}).Error
}
