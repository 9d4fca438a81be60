// internal/services/address_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
)

type AddressService struct {
	addresses repository.AddressRepository
}

type AddressRequest struct {
	Label      string `json:"label" validate:"required,max=50"`
	FullName   string `json:"full_name" validate:"required,max=80"`
	Phone      string `json:"phone" validate:"required,max=20"`
	Street     string `json:"street" validate:"required,max=120"`
	Apartment  string `json:"apartment,omitempty" validate:"omitempty,max=80"`
	City       string `json:"city" validate:"required,max=60"`
	State      string `json:"state,omitempty" validate:"omitempty,max=60"`
	Country    string `json:"country" validate:"required,max=60"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=120"`
	IsDefault  bool   `json:"is_default"`
}

func NewAddressService(addresses repository.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

// ListAddresses returns the user's addresses, default first.
func (s *AddressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	addresses, err := s.addresses.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return addresses, nil
}

func (s *AddressService) GetAddress(ctx context.Context, userID, id uuid.UUID) (*models.Address, error) {
	address, err := s.addresses.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.AddressNotFound())
	}
	return address, nil
}

func (s *AddressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *AddressRequest) (*models.Address, error) {
	address := &models.Address{
		UserID:     userID,
		Label:      req.Label,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Street:     req.Street,
		Apartment:  req.Apartment,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Notes:      req.Notes,
		IsDefault:  req.IsDefault,
	}

	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return address, nil
}

func (s *AddressService) UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *AddressRequest) (*models.Address, error) {
	address, err := s.addresses.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.AddressNotFound())
	}

	address.Label = req.Label
	address.FullName = req.FullName
	address.Phone = req.Phone
	address.Street = req.Street
	address.Apartment = req.Apartment
	address.City = req.City
	address.State = req.State
	address.Country = req.Country
	address.PostalCode = req.PostalCode
	address.Notes = req.Notes
	address.IsDefault = req.IsDefault

	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID, id uuid.UUID) error {
	address, err := s.addresses.FindOwned(ctx, userID, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.AddressNotFound())
	}
	if err := s.addresses.Delete(ctx, address); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}
