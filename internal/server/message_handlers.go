package server

import (
	"warbler/internal/models"
	"warbler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Homepage handles GET /. Authenticated users get their timeline, built from
// the people they follow plus their own warbles. Anonymous visitors get an
// empty landing payload.
func (s *Server) Homepage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.JSON(fiber.Map{"messages": []models.Message{}})
	}

	messages, err := s.messageService.TimelineFor(c.Context(), userID, service.DefaultTimelineLimit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

// CreateMessage handles POST /messages/new
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.messageService.Post(c.Context(), userID, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": msg})
}

// GetMessage handles GET /messages/:id
func (s *Server) GetMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	msg, err := s.messageService.Get(c.Context(), messageID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": msg})
}

// DeleteMessage handles POST /messages/:id/delete
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.Delete(c.Context(), messageID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Warble deleted"})
}

// ToggleLike handles POST /messages/:id/like. Liking an already-liked warble
// removes the like. Liking your own warble is forbidden.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := currentUserID(c)
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.socialService.ToggleLike(c.Context(), userID, messageID)
	if err != nil {
		if models.HasCode(err, models.CodeSelfReference) {
			return models.RespondWithError(c, fiber.StatusForbidden, err)
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}
