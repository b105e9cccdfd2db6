package middleware

import (
	"strings"

	"padho/database"
	"padho/models"
	"padho/services/session"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// SessionToken extracts the session token from the request: cookie first,
// then the Authorization bearer header.
func SessionToken(c *fiber.Ctx) string {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[len("Bearer "):]
		}
	}
	return token
}

// CurrentUser resolves the request's session token to a user, or nil when
// the token is absent, unknown, expired, or its user no longer exists.
func CurrentUser(c *fiber.Ctx) *models.User {
	token := SessionToken(c)
	if token == "" {
		return nil
	}
	return session.Resolve(database.Database.Db, token)
}

// RequireAuth rejects unauthenticated requests with 401 and stores the
// resolved user in c.Locals("user").
func RequireAuth(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireRole authenticates first (401 before any role decision), then
// rejects with 403 unless the user's role is in the allowed set.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		for _, role := range roles {
			if user.Role == role {
				c.Locals("user", user)
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "Forbidden!", nil)
	}
}

// CanMutateResource is the capability check for owner-scoped mutations:
// admins may act on any resource, everyone else only on resources they own.
func CanMutateResource(user *models.User, ownerID string) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.ID == ownerID
}
