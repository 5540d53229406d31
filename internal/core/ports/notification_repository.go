package ports

import (
	"context"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	// Add persists a notification and assigns its id.
	Add(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id int64) (*notification.Notification, error)
	// Update stores the read flag.
	Update(ctx context.Context, n *notification.Notification) error
	// DeleteReadBefore removes read notifications created before the cutoff
	// and returns how many were removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type DeviceTokenRepository interface {
	// Upsert stores the token for its recipient, reactivating it if it exists.
	Upsert(ctx context.Context, t *notification.DeviceToken) error
	ListActive(ctx context.Context, r notification.Recipient) ([]*notification.DeviceToken, error)
	// Deactivate marks every registration of token inactive.
	Deactivate(ctx context.Context, token string, at time.Time) error
}
