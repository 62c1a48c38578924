package lib

import (
	"github.com/linknest/backend/src/models"
	"gorm.io/gorm"
)

// AutoMigrate runs all database migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Connection{},
		&models.Post{},
		&models.Notification{},
	)
}
