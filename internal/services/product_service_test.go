// internal/services/product_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
)

func newProductService() (*ProductService, *mockProductRepository, *mockCategoryRepository, *mockTagRepository) {
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	tags := new(mockTagRepository)
	return NewProductService(products, categories, tags, fakeFiles{}), products, categories, tags
}

func TestCreateProductCollapsesDuplicateTagIDs(t *testing.T) {
	service, products, categories, tags := newProductService()
	userID := uuid.New()

	category := &models.Category{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Panificados"}
	tag := models.Tag{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "sin tacc"}

	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	// The same id twice in the request reaches the lookup only once.
	tags.On("FindByIDs", mock.Anything, []uuid.UUID{tag.ID}).Return([]models.Tag{tag}, nil)

	var created *models.Product
	products.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Product)
			created.ID = uuid.New()
			created.Category = *category
		}).
		Return(nil)
	products.On("FindByIDOrSlug", mock.Anything, mock.Anything).
		Return(&models.Product{Title: "Pan de molde"}, nil)

	_, err := service.CreateProduct(context.Background(), userID, &CreateProductRequest{
		Title:      "Pan de molde",
		Price:      1000,
		CategoryID: category.ID.String(),
		TagIDs:     []string{tag.ID.String(), tag.ID.String()},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, tag.ID, created.Tags[0].ID)
}

func TestCreateProductUnknownTag(t *testing.T) {
	service, products, categories, tags := newProductService()
	userID := uuid.New()

	category := &models.Category{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Panificados"}
	missingID := uuid.New()

	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	tags.On("FindByIDs", mock.Anything, []uuid.UUID{missingID}).Return([]models.Tag{}, nil)

	_, err := service.CreateProduct(context.Background(), userID, &CreateProductRequest{
		Title:      "Pan de molde",
		Price:      1000,
		CategoryID: category.ID.String(),
		TagIDs:     []string{missingID.String()},
	})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "TAG_NOT_FOUND", appErr.Code)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
