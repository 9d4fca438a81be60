// internal/repository/billing_repository_test.go
package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintacc/sintacc-backend/internal/models"
)

func newTestProfile(userID uuid.UUID, legalName string, isDefault bool) *models.BillingProfile {
	return &models.BillingProfile{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		UserID:       userID,
		LegalName:    legalName,
		TaxID:        "30-12345678-9",
		Email:        "facturacion@example.com",
		AddressLine1: "Av. Corrientes 1234",
		City:         "Buenos Aires",
		Country:      "Argentina",
		IsDefault:    isDefault,
	}
}

func defaultProfileIDs(t *testing.T, repo BillingProfileRepository, userID uuid.UUID) []uuid.UUID {
	t.Helper()
	profiles, err := repo.FindByUser(context.Background(), userID, 100, 0)
	require.NoError(t, err)

	var defaults []uuid.UUID
	for _, profile := range profiles {
		if profile.IsDefault {
			defaults = append(defaults, profile.ID)
		}
	}
	return defaults
}

func TestBillingProfileCreateMovesDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingProfileRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := newTestProfile(userID, "Ana Perez", true)
	require.NoError(t, repo.Create(ctx, first))

	second := newTestProfile(userID, "Ana Perez SRL", true)
	require.NoError(t, repo.Create(ctx, second))

	defaults := defaultProfileIDs(t, repo, userID)
	require.Len(t, defaults, 1)
	assert.Equal(t, second.ID, defaults[0])
}

func TestBillingProfileUpdateMovesDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingProfileRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := newTestProfile(userID, "Ana Perez", true)
	require.NoError(t, repo.Create(ctx, first))

	second := newTestProfile(userID, "Ana Perez SRL", false)
	require.NoError(t, repo.Create(ctx, second))

	second.IsDefault = true
	require.NoError(t, repo.Update(ctx, second))

	defaults := defaultProfileIDs(t, repo, userID)
	require.Len(t, defaults, 1)
	assert.Equal(t, second.ID, defaults[0])
}

func TestBillingProfileFindDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewBillingProfileRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// No default yet: nil without an error.
	profile, err := repo.FindDefault(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, profile)

	created := newTestProfile(userID, "Ana Perez", true)
	require.NoError(t, repo.Create(ctx, created))

	profile, err = repo.FindDefault(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, created.ID, profile.ID)
}
