package services

import (
	"context"
	"errors"

	"github.com/linknest/backend/src/models"
	"gorm.io/gorm"
)

// ConnectionService owns the request lifecycle: a pending row is created by
// the sender, only the receiver of that exact row may accept or reject it,
// and once accepted the relation is symmetric. Accepted and rejected are
// terminal.
type ConnectionService struct {
	db *gorm.DB
}

func NewConnectionService(db *gorm.DB) *ConnectionService {
	return &ConnectionService{db: db}
}

// SendRequest creates a pending connection request. At most one row may
// exist per unordered pair: the pre-check gives the friendly error for the
// common case, and the normalized pair index backs it under concurrency —
// two racing requests for the same pair, in either direction, collide on
// the same key and the loser's constraint violation at commit maps to the
// same ConflictError as a pre-check hit.
func (s *ConnectionService) SendRequest(ctx context.Context, senderID, receiverID uint) (*models.Connection, error) {
	if senderID == receiverID {
		return nil, &ValidationError{"you can't send a connection request to yourself"}
	}

	var created models.Connection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id IN ?", []uint{senderID, receiverID}).Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return &ValidationError{"both users must exist"}
		}

		var existing models.Connection
		err := tx.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			senderID, receiverID, receiverID, senderID).
			First(&existing).Error
		if err == nil {
			return &ConflictError{"connection already exists"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = models.Connection{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Status:     models.ConnectionStatusPending,
		}
		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{"connection already exists"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// AcceptRequest transitions a pending request to accepted. The direction is
// exact: only the receiver of the (senderID, receiverID) row may accept, a
// row in the opposite direction or in any other state is NotFoundError.
// The connectionAccepted notification for the sender is written in the same
// transaction.
func (s *ConnectionService) AcceptRequest(ctx context.Context, senderID, receiverID uint) (*models.Connection, error) {
	var accepted models.Connection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.ConnectionStatusPending).
			First(&accepted).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{"connection request not found"}
			}
			return err
		}

		accepted.Status = models.ConnectionStatusAccepted
		if err := tx.Save(&accepted).Error; err != nil {
			return err
		}

		notification := models.Notification{
			RecipientID:   senderID,
			Type:          models.NotificationTypeConnectionAccepted,
			RelatedUserID: receiverID,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return &accepted, nil
}

// RejectRequest transitions a pending request to rejected. Same direction
// rule as AcceptRequest; rejected is terminal.
func (s *ConnectionService) RejectRequest(ctx context.Context, senderID, receiverID uint) (*models.Connection, error) {
	var rejected models.Connection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.ConnectionStatusPending).
			First(&rejected).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{"connection request not found"}
			}
			return err
		}

		rejected.Status = models.ConnectionStatusRejected
		return tx.Save(&rejected).Error
	})
	if err != nil {
		return nil, err
	}

	return &rejected, nil
}

// AreConnected reports whether an accepted row exists between the pair in
// either direction.
func (s *ConnectionService) AreConnected(ctx context.Context, userA, userB uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Connection{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Where("status = ?", models.ConnectionStatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsPending reports whether a pending row exists with exactly the given
// direction. The reverse direction deliberately does not count.
func (s *ConnectionService) IsPending(ctx context.Context, senderID, receiverID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Connection{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.ConnectionStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetConnections returns the users connected to userID, merging rows where
// the user is sender with rows where it is receiver, deduplicated.
func (s *ConnectionService) GetConnections(ctx context.Context, userID uint) ([]models.User, error) {
	var connections []models.Connection
	err := s.db.WithContext(ctx).
		Preload("Sender").Preload("Receiver").
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Find(&connections).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(connections))
	partners := make([]models.User, 0, len(connections))
	for _, conn := range connections {
		var partner models.User
		if conn.SenderID == userID {
			partner = conn.Receiver
		} else {
			partner = conn.Sender
		}
		if seen[partner.ID] {
			continue
		}
		seen[partner.ID] = true
		partners = append(partners, partner)
	}

	return partners, nil
}

// ListPendingRequests returns the pending requests addressed to receiverID,
// newest first, with the sender preloaded.
func (s *ConnectionService) ListPendingRequests(ctx context.Context, receiverID uint) ([]models.Connection, error) {
	var connections []models.Connection
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ? AND status = ?", receiverID, models.ConnectionStatusPending).
		Order("created_at DESC").
		Find(&connections).Error
	if err != nil {
		return nil, err
	}
	return connections, nil
}

// CountConnections returns how many accepted connections userID has.
func (s *ConnectionService) CountConnections(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Connection{}).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
