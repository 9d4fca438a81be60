// internal/services/contact_service.go
package services

import (
	"context"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type ContactService struct {
	contacts repository.ContactRepository
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5,max=2000"`
}

func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) CreateContact(ctx context.Context, req *ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, params utils.PaginationParams) (*utils.PaginationResult, error) {
	contacts, total, err := s.contacts.FindAll(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	result := utils.CreatePaginationResult(contacts, total, params)
	return &result, nil
}
