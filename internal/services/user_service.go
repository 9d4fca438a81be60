// internal/services/user_service.go
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

// UserService backs the admin account endpoints.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context, params utils.PaginationParams) (*utils.PaginationResult, error) {
	users, total, err := s.users.FindAll(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	result := utils.CreatePaginationResult(users, total, params)
	return &result, nil
}

// GetUser accepts a UUID or an email address.
func (s *UserService) GetUser(ctx context.Context, param string) (*models.User, error) {
	var user *models.User
	var err error

	if id, parseErr := uuid.Parse(param); parseErr == nil {
		user, err = s.users.FindByID(ctx, id)
	} else {
		user, err = s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(param)))
	}

	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.UserNotFound())
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, param string) error {
	user, err := s.GetUser(ctx, param)
	if err != nil {
		return err
	}
	if err := s.users.SoftDelete(ctx, user); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}
