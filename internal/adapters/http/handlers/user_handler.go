package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"votehub/internal/adapters/http/middleware"
	"votehub/internal/core/services"
	"votehub/internal/pkg/response"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Profile returns the authenticated user's profile
// @Summary Get profile
// @Description Returns the authenticated user's profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	return response.Success(c, "Profile", user.ToResponse())
}

// ChangePassword updates the authenticated user's password
// @Summary Change password
// @Description Verify the current password and set a new one
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/profile/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		return response.BadRequest(c, "Both currentPassword and newPassword are required")
	}

	err := h.authService.ChangePassword(c.Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid current password")
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return response.Unauthorized(c, "Unknown user")
		default:
			return response.InternalServerError(c, "Failed to update password")
		}
	}

	return response.Success(c, "Password updated", nil)
}
