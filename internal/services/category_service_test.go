// internal/services/category_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
)

func TestCreateCategoryFeaturedLimit(t *testing.T) {
	categories := new(mockCategoryRepository)
	service := NewCategoryService(categories)

	categories.On("CountFeatured", mock.Anything, (*uuid.UUID)(nil)).Return(int64(4), nil)

	_, err := service.CreateCategory(context.Background(), &CreateCategoryRequest{
		Name:        "Congelados",
		Description: "Productos congelados libres de gluten",
		IsFeatured:  true,
	})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_FEATURED_LIMIT", appErr.Code)
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategoryBelowFeaturedLimit(t *testing.T) {
	categories := new(mockCategoryRepository)
	service := NewCategoryService(categories)

	categories.On("CountFeatured", mock.Anything, (*uuid.UUID)(nil)).Return(int64(3), nil)
	categories.On("Create", mock.Anything, mock.Anything).Return(nil)

	category, err := service.CreateCategory(context.Background(), &CreateCategoryRequest{
		Name:        "Congelados",
		Description: "Productos congelados libres de gluten",
		IsFeatured:  true,
	})

	require.NoError(t, err)
	assert.True(t, category.IsFeatured)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	categories := new(mockCategoryRepository)
	service := NewCategoryService(categories)

	categories.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", Detail: "Key (name)=(Panificados) already exists."})

	_, err := service.CreateCategory(context.Background(), &CreateCategoryRequest{
		Name:        "Panificados",
		Description: "Panes y masas",
	})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_CONFLICT", appErr.Code)
}

func TestUpdateCategoryFeaturedLimitExcludesSelf(t *testing.T) {
	categories := new(mockCategoryRepository)
	service := NewCategoryService(categories)

	category := &models.Category{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Despensa",
		IsFeatured: false,
	}

	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categories.On("CountFeatured", mock.Anything, &category.ID).Return(int64(3), nil)
	categories.On("Save", mock.Anything, category).Return(nil)

	featured := true
	updated, err := service.UpdateCategory(context.Background(), category.ID, &UpdateCategoryRequest{
		IsFeatured: &featured,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsFeatured)
}

func TestUpdateCategoryAlreadyFeaturedSkipsLimit(t *testing.T) {
	categories := new(mockCategoryRepository)
	service := NewCategoryService(categories)

	category := &models.Category{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Panificados",
		IsFeatured: true,
	}

	categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	categories.On("Save", mock.Anything, category).Return(nil)

	featured := true
	_, err := service.UpdateCategory(context.Background(), category.ID, &UpdateCategoryRequest{
		IsFeatured: &featured,
	})

	require.NoError(t, err)
	categories.AssertNotCalled(t, "CountFeatured", mock.Anything, mock.Anything)
}

func TestGetCategoryNotFound(t *testing.T) {
	categories := new(mockCategoryRepository)
	service := NewCategoryService(categories)

	id := uuid.New()
	categories.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetCategory(context.Background(), id)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_NOT_FOUND", appErr.Code)
}
