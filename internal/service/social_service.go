package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// SocialService enforces the social-graph rules over the edge stores: the
// self-reference guards, target existence, and like-toggle semantics.
type SocialService struct {
	socialRepo  repository.SocialRepository
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(
	socialRepo repository.SocialRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
) *SocialService {
	return &SocialService{
		socialRepo:  socialRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

// Follow adds a follow edge from actor to target. Self-follow is rejected,
// matching the self-block and self-like guards. Re-following is a no-op.
func (s *SocialService) Follow(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewSelfReferenceError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.socialRepo.AddFollow(ctx, actorID, targetID)
}

// Unfollow removes the follow edge if present; absent edges are a no-op.
func (s *SocialService) Unfollow(ctx context.Context, actorID, targetID uint) error {
	return s.socialRepo.RemoveFollow(ctx, actorID, targetID)
}

// IsFollowing reports whether a follows b.
func (s *SocialService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.socialRepo.IsFollowing(ctx, a, b)
}

// IsFollowedBy reports whether a is followed by b.
func (s *SocialService) IsFollowedBy(ctx context.Context, a, b uint) (bool, error) {
	return s.socialRepo.IsFollowing(ctx, b, a)
}

// Following lists the users the given user follows.
func (s *SocialService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.socialRepo.Following(ctx, userID)
}

// Followers lists the users following the given user.
func (s *SocialService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.socialRepo.Followers(ctx, userID)
}

// Block adds a block edge. Self-block is rejected.
func (s *SocialService) Block(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewSelfReferenceError("You cannot block yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.socialRepo.AddBlock(ctx, actorID, targetID)
}

// Unblock removes the block edge if present.
func (s *SocialService) Unblock(ctx context.Context, actorID, targetID uint) error {
	return s.socialRepo.RemoveBlock(ctx, actorID, targetID)
}

// IsBlocking reports whether a blocks b.
func (s *SocialService) IsBlocking(ctx context.Context, a, b uint) (bool, error) {
	return s.socialRepo.IsBlocking(ctx, a, b)
}

// ToggleLike flips the like edge between actor and message: inserted when
// absent, removed when present. Liking your own warble is rejected. The
// returned bool reports whether the message is liked after the call.
func (s *SocialService) ToggleLike(ctx context.Context, actorID, messageID uint) (bool, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	if message.UserID == actorID {
		return false, models.NewSelfReferenceError("You cannot like your own warble")
	}

	liked, err := s.socialRepo.IsLiked(ctx, actorID, messageID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.socialRepo.RemoveLike(ctx, actorID, messageID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.socialRepo.AddLike(ctx, actorID, messageID); err != nil {
		return false, err
	}
	return true, nil
}

// LikedMessages lists the warbles the given user has liked, newest first.
func (s *SocialService) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.socialRepo.LikedMessages(ctx, userID)
}
