package server

import (
	"errors"

	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID returns the acting identity set by the session middleware.
// Routes behind AuthRequired always have it.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// errorStatus maps an AppError code to an HTTP status. Handlers with a
// route-specific mapping (e.g. self-like is 403) override before calling.
func errorStatus(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidation, models.CodeSelfReference:
		return fiber.StatusBadRequest
	case models.CodeDuplicateIdentity:
		return fiber.StatusConflict
	case models.CodeInvalidCredential:
		return fiber.StatusUnauthorized
	case models.CodeUnauthorized:
		// Anonymous requests are rejected with 401 by the auth middleware;
		// an UNAUTHORIZED error from a service is an ownership failure.
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the standard error envelope with the default status
// mapping for the error's code.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, errorStatus(err), err)
}
