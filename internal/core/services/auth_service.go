package services

import (
	"context"
	"errors"
	"log"
	"regexp"

	"votehub/internal/adapters/persistence/models"
	"votehub/internal/adapters/persistence/repositories"
	"votehub/internal/config"
	"votehub/internal/core/domain"
	"votehub/internal/pkg/jwt"
	"votehub/internal/pkg/password"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid aadhaar number or password")
	ErrUserAlreadyExists  = errors.New("user with the same aadhaar number already exists")
	ErrAdminAlreadyExists = errors.New("admin user already exists")
	ErrInvalidAadhaar     = errors.New("aadhaar number must be exactly 12 digits")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("role must be voter or admin")
)

var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// AuthService handles signup, login and password management
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// SignupInput represents signup input
type SignupInput struct {
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Email         string      `json:"email,omitempty"`
	Mobile        string      `json:"mobile,omitempty"`
	Address       string      `json:"address"`
	AadhaarNumber string      `json:"aadhaar_number"`
	Password      string      `json:"password"`
	Role          domain.Role `json:"role,omitempty"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  *models.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// Signup registers a new user and issues an identity token
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (*AuthResponse, error) {
	if !aadhaarPattern.MatchString(input.AadhaarNumber) {
		return nil, ErrInvalidAadhaar
	}
	if !password.Validate(input.Password) {
		return nil, ErrWeakPassword
	}

	role := input.Role
	if role == "" {
		role = domain.RoleVoter
	}
	if role != domain.RoleVoter && role != domain.RoleAdmin {
		return nil, ErrInvalidRole
	}

	exists, err := s.userRepo.ExistsByAadhaar(ctx, input.AadhaarNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:              input.Name,
		Age:               input.Age,
		Email:             input.Email,
		Mobile:            input.Mobile,
		Address:           input.Address,
		AadhaarNumber:     input.AadhaarNumber,
		Password:          hashedPassword,
		Role:              role,
		ApplicationStatus: domain.ApplicationNone,
	}

	// Admin signup is a conditional insert so the one-admin invariant holds
	// even when two admin signups race. The duplicate-aadhaar unique index
	// backs the existence check above the same way.
	if role == domain.RoleAdmin {
		err = s.userRepo.CreateAdmin(ctx, user)
	} else {
		err = s.userRepo.Create(ctx, user)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminExists):
			return nil, ErrAdminAlreadyExists
		case errors.Is(err, domain.ErrDuplicateEntry):
			return nil, ErrUserAlreadyExists
		default:
			return nil, err
		}
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpiryHours)
	if err != nil {
		return nil, err
	}

	log.Printf("User registered: %s (aadhaar %s)", user.Name, user.AadhaarNumber)

	return &AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}, nil
}

// LoginResponse represents login response
type LoginResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// Login authenticates a user by aadhaar number and password
func (s *AuthService) Login(ctx context.Context, aadhaar, pass string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByAadhaar(ctx, aadhaar)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpiryHours)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Name)

	return &LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !password.Verify(current, user.Password) {
		return ErrInvalidCredentials
	}
	if !password.Validate(next) {
		return ErrWeakPassword
	}

	hash, err := password.Hash(next)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	log.Printf("Password updated for user ID %d", userID)
	return nil
}

// GetUserByID resolves a user for the access guard and the profile endpoint
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
