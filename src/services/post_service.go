package services

import (
	"context"
	"errors"
	"strings"

	"github.com/linknest/backend/src/models"
	"gorm.io/gorm"
)

// PostService handles post creation and feed queries.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// CreatePost stores a new post for the given author. Empty content and
// unknown authors are both validation failures.
func (s *PostService) CreatePost(ctx context.Context, userID uint, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{"post content can't be empty"}
	}

	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author models.User
		if err := tx.First(&author, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{"author does not exist"}
			}
			return err
		}

		post = models.Post{
			UserID:  userID,
			Content: content,
		}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		post.Author = author
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// GetRecentPosts returns the newest posts across all users.
func (s *PostService) GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByUser returns the newest posts authored by userID.
func (s *PostService) GetPostsByUser(ctx context.Context, userID uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetConnectionFeed returns the newest posts by userID and its accepted
// connection partners.
func (s *PostService) GetConnectionFeed(ctx context.Context, userID uint, limit int) ([]models.Post, error) {
	var connections []models.Connection
	err := s.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Find(&connections).Error
	if err != nil {
		return nil, err
	}

	authorIDs := []uint{userID}
	for _, conn := range connections {
		authorIDs = append(authorIDs, conn.PartnerID(userID))
	}

	var posts []models.Post
	err = s.db.WithContext(ctx).
		Preload("Author").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
