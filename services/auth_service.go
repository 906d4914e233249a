// services/auth_service.go
package services

import (
	"errors"
	"log"

	"billing-backend/apperr"
	"billing-backend/models"
	"billing-backend/repository"
	"billing-backend/utils"
)

// ErrInvalidCredentials is deliberately generic: callers cannot tell a
// missing user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN CASHIER"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthService interface {
	Login(username, password string) (*AuthResponse, error)
	Register(input RegisterInput) (*models.User, error)
	GetUser(username string) (*models.User, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(username, password string) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(user); err != nil {
		log.Printf("Failed to record last login for %s: %v", username, err)
	}

	return &AuthResponse{Token: token, Username: user.Username, Role: user.Role}, nil
}

func (s *authService) Register(input RegisterInput) (*models.User, error) {
	existing, err := s.users.FindByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateKey("username already registered: %s", input.Username)
	}

	role := input.Role
	if role == "" {
		role = models.RoleCashier
	}

	user := &models.User{
		Username: input.Username,
		Password: input.Password, // hashed in the BeforeCreate hook
		Role:     role,
		IsActive: true,
	}
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUser(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found: %s", username)
	}
	return user, nil
}
