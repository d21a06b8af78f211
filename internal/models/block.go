package models

import (
	"time"
)

// Block is a directed edge expressing that UserID does not want interaction
// from BlockedUserID. Self-blocks are rejected at the service layer.
type Block struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"user_id"`
	BlockedUserID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Block) TableName() string {
	return "blocked_users"
}
