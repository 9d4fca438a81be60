// internal/services/category_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
)

// At most this many categories can be featured on the home page.
const maxFeaturedCategories = 4

type CategoryService struct {
	categories repository.CategoryRepository
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required"`
	IsFeatured  bool   `json:"is_featured"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.CategoryNotFound(id.String()))
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	if req.IsFeatured {
		if err := s.checkFeaturedLimit(ctx, nil); err != nil {
			return nil, err
		}
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.CategoryConflict(req.Name)
		}
		return nil, apperrors.FromDB(err, nil)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.CategoryNotFound(id.String()))
	}

	if req.IsFeatured != nil && *req.IsFeatured && !category.IsFeatured {
		if err := s.checkFeaturedLimit(ctx, &category.ID); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsFeatured != nil {
		category.IsFeatured = *req.IsFeatured
	}

	if err := s.categories.Save(ctx, category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.CategoryConflict(category.Name)
		}
		return nil, apperrors.FromDB(err, nil)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.CategoryNotFound(id.String()))
	}
	if err := s.categories.Delete(ctx, category); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

func (s *CategoryService) checkFeaturedLimit(ctx context.Context, excludeID *uuid.UUID) error {
	count, err := s.categories.CountFeatured(ctx, excludeID)
	if err != nil {
		return apperrors.FromDB(err, nil)
	}
	if count >= maxFeaturedCategories {
		return apperrors.CategoryFeaturedLimit(maxFeaturedCategories)
	}
	return nil
}
