package models

import (
	"time"
)

// MaxMessageLen is the maximum length of a warble in characters.
const MaxMessageLen = 140

// Message is an individual short post (a "warble").
// Text is immutable after creation; there is no edit path.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
