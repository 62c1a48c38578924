package services

import (
	"context"
	"errors"
	"strings"

	"github.com/linknest/backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 11

// UserService handles account lookup, credential checks, search and
// connection suggestions.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput carries the registration fields.
type CreateUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Headline  string `json:"headline"`
	Summary   string `json:"summary"`
	Location  string `json:"location"`
}

// CreateUser registers a new active user. The password is bcrypt-hashed
// before storage; the email unique constraint is the authority on
// duplicates and a violation surfaces as ConflictError.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, &ValidationError{"email, password, first name and last name are required"}
	}
	if len(input.Password) < 6 {
		return nil, &ValidationError{"password must be at least 6 characters"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Headline:     input.Headline,
		Summary:      input.Summary,
		Location:     input.Location,
		IsActive:     true,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{"email already registered"}
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail looks a user up by exact email match.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"user not found"}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"user not found"}
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if IsNotFound(err) {
			return nil, &AuthenticationError{"invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthenticationError{"invalid credentials"}
	}

	return user, nil
}

// SearchUsers does a case-insensitive substring match against first name,
// last name or headline.
func (s *UserService) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{"search query is required"}
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	err := s.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(headline) LIKE ?",
			pattern, pattern, pattern).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetSuggestedConnections returns users the given user might want to connect
// with: everyone except the user itself and its accepted partners. Pending
// and rejected rows do not exclude anyone.
func (s *UserService) GetSuggestedConnections(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	var connections []models.Connection
	err := s.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Find(&connections).Error
	if err != nil {
		return nil, err
	}

	excluded := make([]uint, 0, len(connections))
	for _, conn := range connections {
		excluded = append(excluded, conn.PartnerID(userID))
	}

	query := s.db.WithContext(ctx).Where("id <> ?", userID)
	if len(excluded) > 0 {
		query = query.Where("id NOT IN ?", excluded)
	}

	var users []models.User
	if err := query.Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateProfile applies the set fields of the update to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update models.ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.FirstName != nil {
		if *update.FirstName == "" {
			return nil, &ValidationError{"first name can't be empty"}
		}
		updates["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		if *update.LastName == "" {
			return nil, &ValidationError{"last name can't be empty"}
		}
		updates["last_name"] = *update.LastName
	}
	if update.Headline != nil {
		updates["headline"] = *update.Headline
	}
	if update.Summary != nil {
		updates["summary"] = *update.Summary
	}
	if update.Location != nil {
		updates["location"] = *update.Location
	}
	if update.ProfilePicture != nil {
		updates["profile_picture"] = *update.ProfilePicture
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return user, nil
}
