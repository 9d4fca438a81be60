// internal/services/promotion_service_test.go
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

func TestCreatePromotionResolvesImageURL(t *testing.T) {
	promotions := new(mockPromotionRepository)
	service := NewPromotionService(promotions, fakeFiles{})

	promotions.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Promotion) bool {
		return p.ImageFile == "verano.jpg" && p.Priority == 3
	})).Return(nil)

	response, err := service.CreatePromotion(context.Background(), &CreatePromotionRequest{
		ImageFile:   "verano.jpg",
		RedirectURL: "https://sintacc.com/ofertas",
		Priority:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, "http://files.test/promotions/verano.jpg", response.ImageURL)
	assert.Equal(t, "https://sintacc.com/ofertas", response.RedirectURL)
	assert.Equal(t, 3, response.Priority)
}

func TestListPromotionsKeepsRepositoryOrder(t *testing.T) {
	promotions := new(mockPromotionRepository)
	service := NewPromotionService(promotions, fakeFiles{})

	promotions.On("FindAll", mock.Anything).Return([]models.Promotion{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ImageFile: "alta.jpg", Priority: 10},
		{BaseModel: models.BaseModel{ID: uuid.New()}, ImageFile: "baja.jpg", Priority: 1},
	}, nil)

	responses, err := service.ListPromotions(context.Background())

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "http://files.test/promotions/alta.jpg", responses[0].ImageURL)
	assert.Equal(t, 10, responses[0].Priority)
	assert.Equal(t, 1, responses[1].Priority)
}

func TestUpdatePromotionPartialFields(t *testing.T) {
	promotions := new(mockPromotionRepository)
	service := NewPromotionService(promotions, fakeFiles{})

	promotion := &models.Promotion{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ImageFile:   "verano.jpg",
		RedirectURL: "https://sintacc.com/ofertas",
		Priority:    3,
	}

	promotions.On("FindByID", mock.Anything, promotion.ID).Return(promotion, nil)
	promotions.On("Save", mock.Anything, promotion).Return(nil)

	priority := 7
	response, err := service.UpdatePromotion(context.Background(), promotion.ID, &UpdatePromotionRequest{
		Priority: &priority,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, response.Priority)
	// Untouched fields survive a partial update.
	assert.Equal(t, "http://files.test/promotions/verano.jpg", response.ImageURL)
	assert.Equal(t, "https://sintacc.com/ofertas", response.RedirectURL)
}

func TestGetPromotionNotFound(t *testing.T) {
	promotions := new(mockPromotionRepository)
	service := NewPromotionService(promotions, fakeFiles{})

	id := uuid.New()
	promotions.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetPromotion(context.Background(), id)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "PROMOTION_NOT_FOUND", appErr.Code)
}

func TestDeleteAllPromotions(t *testing.T) {
	promotions := new(mockPromotionRepository)
	service := NewPromotionService(promotions, fakeFiles{})

	promotions.On("DeleteAll", mock.Anything).Return(nil)

	require.NoError(t, service.DeleteAllPromotions(context.Background()))
	promotions.AssertExpectations(t)
}
