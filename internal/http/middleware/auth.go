package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"edcstudio/internal/auth"
	"edcstudio/internal/model"
	"edcstudio/internal/service"
)

// CurrentUserLocalKey stores the authenticated user in Fiber's context locals.
const CurrentUserLocalKey = "current_user"

// Authenticate validates the Bearer token and loads the matching user into
// locals. Requests without a valid token get 401.
func Authenticate(tokens *auth.Manager, users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		username, err := tokens.ParseToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		user, err := users.ByUsername(c.UserContext(), username)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unknown user")
		}

		c.Locals(CurrentUserLocalKey, user)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated user is not an admin.
// It must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := c.Locals(CurrentUserLocalKey).(*model.User)
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		if !user.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin privileges required")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Authenticate, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(CurrentUserLocalKey).(*model.User)
	return user
}
