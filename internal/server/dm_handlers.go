package server

import (
	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendDirectMessage handles POST /dm/send/:id
func (s *Server) SendDirectMessage(c *fiber.Ctx) error {
	senderID := currentUserID(c)
	recipientID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dm, err := s.dmService.Send(c.Context(), senderID, recipientID, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"direct_message": dm})
}

// ReplyDirectMessage handles POST /dm/reply/:id. A reply is a send addressed
// back at the other party; the :id names the user being replied to.
func (s *Server) ReplyDirectMessage(c *fiber.Ctx) error {
	return s.SendDirectMessage(c)
}

// Inbox handles GET /dm/inbox
func (s *Server) Inbox(c *fiber.Ctx) error {
	userID := currentUserID(c)

	dms, err := s.dmService.Inbox(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"direct_messages": dms})
}

// Sent handles GET /dm/sent
func (s *Server) Sent(c *fiber.Ctx) error {
	userID := currentUserID(c)

	dms, err := s.dmService.Sent(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"direct_messages": dms})
}
