package middleware

import (
	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionLoader resolves the session cookie, if any, and stores the acting
// user id in request locals. It never rejects: anonymous requests simply
// carry no user id. Handlers and AuthRequired consult the local.
func SessionLoader(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Next()
		}

		userID, ok, err := store.Resolve(c.Context(), token)
		if err != nil {
			observability.RedisErrorRate.WithLabelValues("session_resolve").Inc()
			Logger.ErrorContext(c.UserContext(), "session resolve failed", "error", err.Error())
			return c.Next()
		}
		if ok {
			c.Locals("userID", userID)
		}
		return c.Next()
	}
}

// AuthRequired rejects requests that did not resolve to an authenticated
// identity. It must run after SessionLoader.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userID").(uint); !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Access unauthorized"))
		}
		return c.Next()
	}
}
