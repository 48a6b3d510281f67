package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/config"
	"votehub/internal/core/domain"
	"votehub/internal/core/services"
	"votehub/internal/pkg/jwt"
	"votehub/internal/pkg/response"
)

// AuthMiddleware resolves the caller's identity. The token only carries the
// user ID; the user record is re-read on every request so role and voting
// state are never stale.
func AuthMiddleware(authService *services.AuthService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		// 1. Try to get token from cookie first
		token = c.Cookies("token")

		// 2. If not in cookie, try Authorization header
		if token == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if token == "" {
			return response.Unauthorized(c, "Token Not Found")
		}

		// 4. Validate token
		claims, err := jwt.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		// 5. Resolve the user behind the token
		user, err := authService.GetUserByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return response.Unauthorized(c, "Unknown user")
			}
			return response.InternalServerError(c, "Authentication failed")
		}

		// 6. Set resolved identity in context
		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}

// AdminOnly allows only the admin role. Must run after AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		if user.Role != domain.RoleAdmin {
			return response.Forbidden(c, "user does not have admin role")
		}
		return c.Next()
	}
}

// UserFromContext returns the identity resolved by AuthMiddleware
func UserFromContext(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}
