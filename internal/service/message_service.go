package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// DefaultTimelineLimit caps timeline and profile listings.
const DefaultTimelineLimit = 100

// MessageService implements warble creation, retrieval, timelines, and
// owner-gated deletion.
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// Post creates a warble owned by userID with a server-assigned timestamp.
func (s *MessageService) Post(ctx context.Context, userID uint, text string) (*models.Message, error) {
	if err := validation.ValidateWarbleText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{
		Text:   text,
		UserID: userID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Get returns a warble by id; a missing id is a hard NOT_FOUND failure.
func (s *MessageService) Get(ctx context.Context, id uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id)
}

// TimelineFor returns the newest warbles authored by the user or anyone the
// user follows, capped at limit (default 100).
func (s *MessageService) TimelineFor(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > DefaultTimelineLimit {
		limit = DefaultTimelineLimit
	}
	return s.messageRepo.Timeline(ctx, userID, limit)
}

// ProfileMessages returns one author's warbles, newest first, capped at limit.
func (s *MessageService) ProfileMessages(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > DefaultTimelineLimit {
		limit = DefaultTimelineLimit
	}
	return s.messageRepo.ByUser(ctx, userID, limit)
}

// Delete removes a warble. Only the owner may delete; anyone else gets
// UNAUTHORIZED and the warble is left intact.
func (s *MessageService) Delete(ctx context.Context, messageID, actingUserID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.UserID != actingUserID {
		return models.NewUnauthorizedError("You can only delete your own warbles")
	}
	return s.messageRepo.Delete(ctx, messageID)
}
