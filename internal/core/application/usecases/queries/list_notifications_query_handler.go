package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle returns up to ListLimit notifications, newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			message,
			notification_type,
			order_id,
			is_read,
			created_at
		FROM notifications
		WHERE recipient_role = ? AND recipient_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, query.Recipient().Role().String(), query.Recipient().ID(), ListLimit).Rows()
	if err != nil {
		return nil, queryError("list notifications", err)
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var v NotificationView
		if err = rows.Scan(&v.ID, &v.Title, &v.Message, &v.Kind, &v.OrderID, &v.IsRead, &v.CreatedAt); err != nil {
			return nil, queryError("list notifications", err)
		}
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, queryError("list notifications", err)
	}
	return views, nil
}
