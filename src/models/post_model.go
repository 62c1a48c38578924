package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Content string `json:"content" gorm:"type:text;not null"`
	Author  User   `json:"-" gorm:"foreignKey:UserID"`
}

type PostDto struct {
	ID        uint      `json:"_id"`
	Author    UserDto   `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	TimeAgo   string    `json:"time_ago"`
}
