// internal/services/billing_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type BillingService struct {
	profiles repository.BillingProfileRepository
}

type BillingProfileRequest struct {
	LegalName    string `json:"legal_name" validate:"required,max=120"`
	TaxID        string `json:"tax_id" validate:"required,max=30"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=20"`
	AddressLine1 string `json:"address_line1" validate:"required,max=120"`
	AddressLine2 string `json:"address_line2,omitempty" validate:"omitempty,max=80"`
	City         string `json:"city" validate:"required,max=60"`
	State        string `json:"state,omitempty" validate:"omitempty,max=60"`
	Country      string `json:"country" validate:"required,max=60"`
	PostalCode   string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	IsDefault    bool   `json:"is_default"`
}

func NewBillingService(profiles repository.BillingProfileRepository) *BillingService {
	return &BillingService{profiles: profiles}
}

func (s *BillingService) ListProfiles(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.BillingProfile, error) {
	profiles, err := s.profiles.FindByUser(ctx, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return profiles, nil
}

func (s *BillingService) GetProfile(ctx context.Context, userID, id uuid.UUID) (*models.BillingProfile, error) {
	profile, err := s.profiles.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.BillingNotFound())
	}
	return profile, nil
}

func (s *BillingService) CreateProfile(ctx context.Context, userID uuid.UUID, req *BillingProfileRequest) (*models.BillingProfile, error) {
	profile := &models.BillingProfile{
		UserID:       userID,
		LegalName:    req.LegalName,
		TaxID:        req.TaxID,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		IsDefault:    req.IsDefault,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return profile, nil
}

func (s *BillingService) UpdateProfile(ctx context.Context, userID, id uuid.UUID, req *BillingProfileRequest) (*models.BillingProfile, error) {
	profile, err := s.profiles.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.BillingNotFound())
	}

	profile.LegalName = req.LegalName
	profile.TaxID = req.TaxID
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.AddressLine1 = req.AddressLine1
	profile.AddressLine2 = req.AddressLine2
	profile.City = req.City
	profile.State = req.State
	profile.Country = req.Country
	profile.PostalCode = req.PostalCode
	profile.IsDefault = req.IsDefault

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return profile, nil
}

func (s *BillingService) DeleteProfile(ctx context.Context, userID, id uuid.UUID) error {
	profile, err := s.profiles.FindOwned(ctx, userID, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.BillingNotFound())
	}
	if err := s.profiles.Delete(ctx, profile); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}
