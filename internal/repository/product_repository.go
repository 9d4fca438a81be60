// internal/repository/product_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Search(ctx context.Context, query ProductQuery) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	dbQuery := r.db.WithContext(ctx).Model(&models.Product{})

	if query.Search != "" {
		term := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if query.IsFeatured != nil {
		dbQuery = dbQuery.Where("is_featured = ?", *query.IsFeatured)
	}
	if query.CategoryID != nil {
		dbQuery = dbQuery.Where("category_id = ?", *query.CategoryID)
	}
	if len(query.TagIDs) > 0 {
		dbQuery = dbQuery.
			Joins("JOIN product_tags ON product_tags.product_id = products.id").
			Where("product_tags.tag_id IN ?", query.TagIDs).
			Distinct("products.*")
	}

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "title"
	}
	sortOrder := "ASC"
	if strings.EqualFold(query.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	err := dbQuery.
		Preload("Category").
		Preload("Tags").
		Preload("Images").
		Order(sortBy + " " + sortOrder).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Preload("Images").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDOrSlug(ctx context.Context, param string) (*models.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Preload("Images")

	if id, err := uuid.Parse(param); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("slug = ? OR LOWER(title) = ?", param, strings.ToLower(param))
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByTag(ctx context.Context, tag string, query ProductQuery) ([]models.Product, error) {
	var products []models.Product

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "title"
	}
	sortOrder := "ASC"
	if strings.EqualFold(query.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	err := r.db.WithContext(ctx).
		Joins("JOIN product_tags ON product_tags.product_id = products.id").
		Joins("JOIN tags ON tags.id = product_tags.tag_id").
		Where("LOWER(tags.name) = ?", strings.ToLower(tag)).
		Distinct("products.*").
		Preload("Category").
		Preload("Tags").
		Preload("Images").
		Order(sortBy + " " + sortOrder).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

func (r *productRepository) Update(ctx context.Context, product *models.Product, replaceImages bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(product).Association("Tags").Replace(product.Tags); err != nil {
			return err
		}
		if replaceImages {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			for i := range product.Images {
				product.Images[i].ID = 0
				product.Images[i].ProductID = product.ID
			}
			if len(product.Images) > 0 {
				if err := tx.Create(&product.Images).Error; err != nil {
					return err
				}
			}
		}
		return tx.Omit("Tags", "Images", "Category", "User").Save(product).Error
	})
}

func (r *productRepository) SoftDelete(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Delete(product).Error
}
