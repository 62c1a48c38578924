package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory SQLite database named after the test so
// parallel tests don't share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := lib.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, firstName string) *models.User {
	t.Helper()

	svc := NewUserService(db)
	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:     strings.ToLower(firstName) + "@example.com",
		Password:  "password123",
		FirstName: firstName,
		LastName:  "Tester",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", firstName, err)
	}
	return user
}

func containsUserID(users []models.User, id uint) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
