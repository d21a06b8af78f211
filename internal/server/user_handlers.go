package server

import (
	"warbler/internal/models"
	"warbler/internal/service"
	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users. An optional `q` query parameter filters by
// username substring.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.List(c.Context(), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles GET /users/:id. The profile view carries the user's most
// recent warbles, newest first.
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	messages, err := s.messageService.ProfileMessages(c.Context(), userID, service.DefaultTimelineLimit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":     user,
		"messages": messages,
	})
}

// GetFollowing handles GET /users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if _, err := s.userRepo.GetByID(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	users, err := s.socialService.Following(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": users})
}

// GetFollowers handles GET /users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if _, err := s.userRepo.GetByID(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	users, err := s.socialService.Followers(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"followers": users})
}

// GetLikes handles GET /users/:id/likes
func (s *Server) GetLikes(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if _, err := s.userRepo.GetByID(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	messages, err := s.socialService.LikedMessages(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"likes": messages})
}

// FollowUser handles POST /users/follow/:id
func (s *Server) FollowUser(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.Follow(c.Context(), actorID, targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Now following"})
}

// UnfollowUser handles POST /users/stop-following/:id
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.Unfollow(c.Context(), actorID, targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stopped following"})
}

// BlockUser handles POST /users/block/:id
func (s *Server) BlockUser(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.Block(c.Context(), actorID, targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User has been blocked"})
}

// UnblockUser handles POST /users/unblock/:id
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.Unblock(c.Context(), actorID, targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User has been unblocked"})
}

// UpdateProfile handles POST /users/profile. The current password must
// re-verify before any change is applied.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		Password       string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          userID,
		Username:        req.Username,
		Email:           req.Email,
		ImageURL:        req.ImageURL,
		HeaderImageURL:  req.HeaderImageURL,
		Bio:             req.Bio,
		Location:        req.Location,
		CurrentPassword: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// DeleteAccount handles POST /users/delete. The acting user's account and
// everything it owns are removed, then the session is destroyed.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.authService.DeleteAccount(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	if token := c.Cookies(session.CookieName); token != "" {
		_ = s.sessions.Destroy(c.Context(), token)
	}
	s.clearSessionCookie(c)

	return c.JSON(fiber.Map{"message": "Account deleted"})
}
