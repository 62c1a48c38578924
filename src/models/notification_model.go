package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	RecipientID   uint             `json:"recipient" gorm:"not null;index"`
	Type          NotificationType `json:"type" gorm:"type:varchar(32);not null"`
	RelatedUserID uint             `json:"related_user,omitempty"`
	Read          bool             `json:"read" gorm:"default:false"`
	Recipient     User             `json:"-" gorm:"foreignKey:RecipientID"`
	RelatedUser   User             `json:"-" gorm:"foreignKey:RelatedUserID"`
}

type NotificationType string

const (
	NotificationTypeLike               NotificationType = "like"
	NotificationTypeComment            NotificationType = "comment"
	NotificationTypeConnectionAccepted NotificationType = "connectionAccepted"
)

type NotificationDto struct {
	ID          uint             `json:"_id"`
	Type        NotificationType `json:"type"`
	Read        bool             `json:"read"`
	RelatedUser *UserDto         `json:"relatedUser,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
