// internal/services/billing_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
)

func TestGetProfileNotFound(t *testing.T) {
	profiles := new(mockBillingRepository)
	service := NewBillingService(profiles)

	userID := uuid.New()
	profileID := uuid.New()
	profiles.On("FindOwned", mock.Anything, userID, profileID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetProfile(context.Background(), userID, profileID)

	// The account surface has its own code; ORDER_BILLING_NOT_FOUND belongs
	// to checkout.
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "BILLING_NOT_FOUND", appErr.Code)
}

func TestCreateProfileCarriesDefaultFlag(t *testing.T) {
	profiles := new(mockBillingRepository)
	service := NewBillingService(profiles)

	userID := uuid.New()
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *models.BillingProfile) bool {
		return p.UserID == userID && p.IsDefault && p.LegalName == "Ana Perez SRL"
	})).Return(nil)

	profile, err := service.CreateProfile(context.Background(), userID, &BillingProfileRequest{
		LegalName:    "Ana Perez SRL",
		TaxID:        "30-12345678-9",
		Email:        "facturacion@example.com",
		AddressLine1: "Av. Corrientes 1234",
		City:         "Buenos Aires",
		Country:      "Argentina",
		IsDefault:    true,
	})

	require.NoError(t, err)
	assert.True(t, profile.IsDefault)
	profiles.AssertExpectations(t)
}
