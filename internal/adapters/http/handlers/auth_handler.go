package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"votehub/internal/core/domain"
	"votehub/internal/core/services"
	"votehub/internal/pkg/response"
)

// AuthHandler handles signup and login endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents signup request body
type SignupRequest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	Address       string `json:"address"`
	AadhaarNumber string `json:"aadhaar_number"`
	Password      string `json:"password"`
	Role          string `json:"role"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	AadhaarNumber string `json:"aadhaar_number"`
	Password      string `json:"password"`
}

// Signup handles user registration
// @Summary Register a new user
// @Description Register a voter (or the single admin) and return an identity token
// @Tags User
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /user/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Age <= 0 {
		return response.BadRequest(c, "Age is required")
	}
	if req.Address == "" {
		return response.BadRequest(c, "Address is required")
	}
	if req.AadhaarNumber == "" {
		return response.BadRequest(c, "Aadhaar number is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.SignupInput{
		Name:          strings.TrimSpace(req.Name),
		Age:           req.Age,
		Email:         strings.TrimSpace(req.Email),
		Mobile:        strings.TrimSpace(req.Mobile),
		Address:       strings.TrimSpace(req.Address),
		AadhaarNumber: strings.TrimSpace(req.AadhaarNumber),
		Password:      req.Password,
		Role:          domain.Role(req.Role),
	}

	result, err := h.authService.Signup(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAadhaar),
			errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrInvalidRole),
			errors.Is(err, services.ErrUserAlreadyExists),
			errors.Is(err, services.ErrAdminAlreadyExists):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Success(c, "User registered successfully", result)
}

// Login handles user login
// @Summary Login
// @Description Authenticate by aadhaar number and password
// @Tags User
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.AadhaarNumber == "" || req.Password == "" {
		return response.BadRequest(c, "Aadhaar number and password are required")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(req.AadhaarNumber), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid aadhaar number or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", result)
}
