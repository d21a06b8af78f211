package repository

import (
	"context"

	"warbler/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialRepository defines the edge-store operations for the three social
// relations: follows, blocks, and likes. Each relation exposes add, remove,
// and membership queries over its edge set.
type SocialRepository interface {
	AddFollow(ctx context.Context, followerID, followedID uint) error
	RemoveFollow(ctx context.Context, followerID, followedID uint) error
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
	Following(ctx context.Context, userID uint) ([]models.User, error)
	Followers(ctx context.Context, userID uint) ([]models.User, error)

	AddBlock(ctx context.Context, blockerID, blockedID uint) error
	RemoveBlock(ctx context.Context, blockerID, blockedID uint) error
	IsBlocking(ctx context.Context, blockerID, blockedID uint) (bool, error)

	AddLike(ctx context.Context, userID, messageID uint) error
	RemoveLike(ctx context.Context, userID, messageID uint) error
	IsLiked(ctx context.Context, userID, messageID uint) (bool, error)
	LikedMessages(ctx context.Context, userID uint) ([]models.Message, error)
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository returns a new SocialRepository implementation.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

// AddFollow inserts a follow edge. Re-following is an idempotent no-op: the
// insert defers to the composite unique index with ON CONFLICT DO NOTHING.
func (r *socialRepository) AddFollow(ctx context.Context, followerID, followedID uint) error {
	edge := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) RemoveFollow(ctx context.Context, followerID, followedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&cnt).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return cnt > 0, nil
}

func (r *socialRepository) Following(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.followed_id").
		Where("f.follower_id = ?", userID).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *socialRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.follower_id").
		Where("f.followed_id = ?", userID).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *socialRepository) AddBlock(ctx context.Context, blockerID, blockedID uint) error {
	edge := &models.Block{UserID: blockerID, BlockedUserID: blockedID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) RemoveBlock(ctx context.Context, blockerID, blockedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND blocked_user_id = ?", blockerID, blockedID).
		Delete(&models.Block{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) IsBlocking(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("user_id = ? AND blocked_user_id = ?", blockerID, blockedID).
		Count(&cnt).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return cnt > 0, nil
}

func (r *socialRepository) AddLike(ctx context.Context, userID, messageID uint) error {
	edge := &models.Like{UserID: userID, MessageID: messageID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) RemoveLike(ctx context.Context, userID, messageID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&cnt).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return cnt > 0, nil
}

func (r *socialRepository) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Joins("JOIN likes l ON messages.id = l.message_id").
		Where("l.user_id = ?", userID).
		Order("messages.created_at DESC").
		Preload("User").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
