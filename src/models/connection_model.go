package models

import (
	"gorm.io/gorm"
)

// Connection is a directed relationship row. The pair is unique regardless
// of direction: PairLo/PairHi hold the two user IDs in normalized order, so
// the composite unique index rejects a duplicate in either direction at
// commit time on any dialect.
type Connection struct {
	gorm.Model
	SenderID   uint             `json:"sender" gorm:"not null;index"`
	ReceiverID uint             `json:"receiver" gorm:"not null;index"`
	PairLo     uint             `json:"-" gorm:"not null;uniqueIndex:idx_connections_pair"`
	PairHi     uint             `json:"-" gorm:"not null;uniqueIndex:idx_connections_pair"`
	Status     ConnectionStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Sender     User             `json:"-" gorm:"foreignKey:SenderID"`
	Receiver   User             `json:"-" gorm:"foreignKey:ReceiverID"`
}

// BeforeCreate fills the normalized pair key from the directed endpoints.
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	c.PairLo, c.PairHi = c.SenderID, c.ReceiverID
	if c.PairLo > c.PairHi {
		c.PairLo, c.PairHi = c.PairHi, c.PairLo
	}
	return nil
}

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// PartnerID returns the other end of the connection from userID's point of view.
func (c *Connection) PartnerID(userID uint) uint {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}

type ConnectionRequestDto struct {
	ID        uint    `json:"_id"`
	Sender    UserDto `json:"sender"`
	Receiver  uint    `json:"receiver"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
