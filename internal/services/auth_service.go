// internal/services/auth_service.go
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/config"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type AuthService struct {
	users repository.UserRepository
	cfg   *config.Config
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	user := &models.User{
		Email:    req.Email,
		FullName: req.FullName,
		Roles:    []string{models.RoleUser},
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.EmailAlreadyRegistered()
		}
		return nil, apperrors.FromDB(err, nil)
	}

	return s.respondWithToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Same answer for unknown email and bad password.
		return nil, apperrors.InvalidCredentials()
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	return s.respondWithToken(user)
}

// CheckStatus revalidates the bearer and hands back a fresh token, the way
// single-page frontends keep sessions alive.
func (s *AuthService) CheckStatus(ctx context.Context, userID uuid.UUID) (*AuthResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.UserNotFound())
	}
	return s.respondWithToken(user)
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.UserNotFound())
	}
	return user, nil
}

func (s *AuthService) respondWithToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Roles, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}
