package services

import (
	"context"
	"errors"

	"github.com/linknest/backend/src/models"
	"gorm.io/gorm"
)

// NotificationService reads and updates per-user notifications. Creation
// happens inside the transaction of the operation that triggers it.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.WithContext(ctx).
		Preload("RelatedUser").
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one of the user's notifications as read. A notification
// belonging to someone else is NotFoundError, not a permission error, so
// the caller can't probe other users' IDs.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	var notification models.Notification
	err := s.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", notificationID, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"notification not found"}
		}
		return nil, err
	}

	notification.Read = true
	if err := s.db.WithContext(ctx).Save(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkAllRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
