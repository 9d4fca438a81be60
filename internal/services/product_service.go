// internal/services/product_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

// Sortable catalog columns. Anything else falls back to title.
var productSortFields = []string{"title", "price", "stock", "slug", "is_featured"}

type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	files      FileURLResolver
}

type CreateProductRequest struct {
	Title         string   `json:"title" validate:"required,min=2,max=255"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	UnitOfMeasure string   `json:"unit_of_measure,omitempty" validate:"omitempty,max=30"`
	Description   string   `json:"description,omitempty"`
	Slug          string   `json:"slug,omitempty" validate:"omitempty,max=255"`
	Stock         int      `json:"stock" validate:"min=0"`
	IsFeatured    bool     `json:"is_featured"`
	CategoryID    string   `json:"category_id" validate:"required,uuid"`
	TagIDs        []string `json:"tag_ids,omitempty" validate:"omitempty,dive,uuid"`
	Images        []string `json:"images,omitempty"`
}

type UpdateProductRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Price         *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	UnitOfMeasure *string   `json:"unit_of_measure,omitempty" validate:"omitempty,max=30"`
	Description   *string   `json:"description,omitempty"`
	Slug          *string   `json:"slug,omitempty" validate:"omitempty,max=255"`
	Stock         *int      `json:"stock,omitempty" validate:"omitempty,min=0"`
	IsFeatured    *bool     `json:"is_featured,omitempty"`
	CategoryID    *string   `json:"category_id,omitempty" validate:"omitempty,uuid"`
	TagIDs        []string  `json:"tag_ids,omitempty" validate:"omitempty,dive,uuid"`
	Images        []string  `json:"images,omitempty"`
}

type ProductFilters struct {
	IsFeatured *bool
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	files FileURLResolver,
) *ProductService {
	return &ProductService{products: products, categories: categories, tags: tags, files: files}
}

func (s *ProductService) ListProducts(ctx context.Context, params utils.PaginationParams, filters ProductFilters) (*utils.PaginationResult, error) {
	query := repository.ProductQuery{
		Limit:      params.Limit,
		Offset:     params.Offset(),
		SortBy:     sortFieldOrDefault(params.Sort),
		SortOrder:  params.Order,
		Search:     params.Search,
		IsFeatured: filters.IsFeatured,
		CategoryID: filters.CategoryID,
		TagIDs:     filters.TagIDs,
	}

	products, total, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i], s.files))
	}

	result := utils.CreatePaginationResult(responses, total, params)
	return &result, nil
}

// GetProduct resolves the param as UUID, slug or case-insensitive title.
func (s *ProductService) GetProduct(ctx context.Context, param string) (*ProductResponse, error) {
	product, err := s.products.FindByIDOrSlug(ctx, param)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.ProductNotFound(param))
	}

	response := NewProductResponse(product, s.files)
	return &response, nil
}

func (s *ProductService) GetProductsByTag(ctx context.Context, tag string, params utils.PaginationParams) ([]ProductResponse, error) {
	query := repository.ProductQuery{
		Limit:     params.Limit,
		Offset:    params.Offset(),
		SortBy:    sortFieldOrDefault(params.Sort),
		SortOrder: params.Order,
	}

	products, err := s.products.FindByTag(ctx, tag, query)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if len(products) == 0 {
		return nil, apperrors.ProductsByTagNotFound(tag)
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i], s.files))
	}
	return responses, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, userID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apperrors.CategoryNotFound(req.CategoryID)
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, apperrors.FromDB(err, apperrors.CategoryNotFound(req.CategoryID))
	}

	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:         req.Title,
		Price:         req.Price,
		UnitOfMeasure: req.UnitOfMeasure,
		Description:   req.Description,
		Slug:          req.Slug,
		Stock:         req.Stock,
		IsFeatured:    req.IsFeatured,
		UserID:        userID,
		CategoryID:    categoryID,
		Tags:          tags,
		Images:        imageRows(req.Images),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return s.GetProduct(ctx, product.ID.String())
}

func (s *ProductService) UpdateProduct(ctx context.Context, param string, req *UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByIDOrSlug(ctx, param)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.ProductNotFound(param))
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, apperrors.CategoryNotFound(*req.CategoryID)
		}
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			return nil, apperrors.FromDB(err, apperrors.CategoryNotFound(*req.CategoryID))
		}
		product.CategoryID = categoryID
	}

	if req.TagIDs != nil {
		tags, err := s.resolveTags(ctx, req.TagIDs)
		if err != nil {
			return nil, err
		}
		product.Tags = tags
	}

	if req.Title != nil {
		product.Title = *req.Title
		if req.Slug == nil {
			// Regenerate from the new title unless a slug was sent explicitly.
			product.Slug = ""
		}
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.UnitOfMeasure != nil {
		product.UnitOfMeasure = *req.UnitOfMeasure
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	replaceImages := req.Images != nil
	if replaceImages {
		product.Images = imageRows(req.Images)
	}

	if err := s.products.Update(ctx, product, replaceImages); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return s.GetProduct(ctx, product.ID.String())
}

func (s *ProductService) DeleteProduct(ctx context.Context, param string) error {
	product, err := s.products.FindByIDOrSlug(ctx, param)
	if err != nil {
		return apperrors.FromDB(err, apperrors.ProductNotFound(param))
	}
	if err := s.products.SoftDelete(ctx, product); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

// resolveTags loads the referenced tags and fails when any id is missing, so
// a bad reference never reaches the write.
func (s *ProductService) resolveTags(ctx context.Context, tagIDs []string) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	// Duplicate ids collapse to one reference.
	seen := make(map[uuid.UUID]bool, len(tagIDs))
	ids := make([]uuid.UUID, 0, len(tagIDs))
	for _, raw := range tagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.TagNotFound()
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	tags, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if len(tags) != len(ids) {
		return nil, apperrors.TagNotFound()
	}
	return tags, nil
}

func imageRows(fileNames []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(fileNames))
	for _, name := range fileNames {
		images = append(images, models.ProductImage{FileName: name})
	}
	return images
}

func sortFieldOrDefault(sort string) string {
	for _, field := range productSortFields {
		if field == sort {
			return sort
		}
	}
	return productSortFields[0]
}
