package repository

import (
	"context"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// DirectMessageRepository defines persistence operations for direct messages.
// There is no update or delete path for DM rows.
type DirectMessageRepository interface {
	Create(ctx context.Context, dm *models.DirectMessage) error
	Inbox(ctx context.Context, userID uint) ([]models.DirectMessage, error)
	Sent(ctx context.Context, userID uint) ([]models.DirectMessage, error)
}

type directMessageRepository struct {
	db *gorm.DB
}

// NewDirectMessageRepository returns a new DirectMessageRepository implementation.
func NewDirectMessageRepository(db *gorm.DB) DirectMessageRepository {
	return &directMessageRepository{db: db}
}

func (r *directMessageRepository) Create(ctx context.Context, dm *models.DirectMessage) error {
	if err := r.db.WithContext(ctx).Create(dm).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *directMessageRepository) Inbox(ctx context.Context, userID uint) ([]models.DirectMessage, error) {
	var dms []models.DirectMessage
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Preload("Sender").
		Find(&dms).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return dms, nil
}

func (r *directMessageRepository) Sent(ctx context.Context, userID uint) ([]models.DirectMessage, error) {
	var dms []models.DirectMessage
	if err := r.db.WithContext(ctx).
		Where("sender_id = ?", userID).
		Order("created_at DESC").
		Preload("Recipient").
		Find(&dms).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return dms, nil
}
