package models

import (
	"time"
)

// Follow is a directed edge meaning FollowerID's timeline includes
// FollowedID's warbles. The (follower_id, followed_id) pair is unique so a
// re-follow cannot create a duplicate edge.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index:idx_follow_follower;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
