// Package notificationrepo persists the notification feed and push device tokens.
package notificationrepo

import (
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/kernel"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/core/domain/model/notification"
)

type NotificationDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	RecipientRole    string `gorm:"size:32"`
	RecipientID      int64
	Title            string `gorm:"size:255"`
	Message          string `gorm:"type:text"`
	NotificationType string `gorm:"size:32"`
	OrderID          *int64
	IsRead           bool
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

type DeviceTokenDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	RecipientRole string `gorm:"size:32"`
	RecipientID   int64
	Token         string `gorm:"size:512;uniqueIndex:uq_device_tokens_token"`
	DeviceType    string `gorm:"size:16"`
	IsActive      bool
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (DeviceTokenDTO) TableName() string {
	return "device_tokens"
}

func notificationFromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:               n.ID(),
		RecipientRole:    n.Recipient().Role().String(),
		RecipientID:      n.Recipient().ID(),
		Title:            n.Title(),
		Message:          n.Message(),
		NotificationType: string(n.Kind()),
		OrderID:          n.OrderID(),
		IsRead:           n.IsRead(),
		CreatedAt:        n.CreatedAt(),
	}
}

func notificationToDomain(dto NotificationDTO) (*notification.Notification, error) {
	recipient, err := recipientFromColumns(dto.RecipientRole, dto.RecipientID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(dto.ID, recipient, dto.Title, dto.Message,
		notification.Kind(dto.NotificationType), dto.OrderID, dto.IsRead, dto.CreatedAt)
}

func deviceTokenToDomain(dto DeviceTokenDTO) (*notification.DeviceToken, error) {
	recipient, err := recipientFromColumns(dto.RecipientRole, dto.RecipientID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreDeviceToken(dto.ID, recipient, dto.Token,
		notification.DeviceType(dto.DeviceType), dto.IsActive, dto.UpdatedAt)
}

func recipientFromColumns(role string, id int64) (notification.Recipient, error) {
	r, err := kernel.ParseRole(role)
	if err != nil {
		return notification.Recipient{}, err
	}
	return notification.NewRecipient(r, id)
}
