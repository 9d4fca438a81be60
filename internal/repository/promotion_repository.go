// internal/repository/promotion_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) FindAll(ctx context.Context) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.WithContext(ctx).
		Order("priority DESC, created_at DESC").
		Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) Save(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) Delete(ctx context.Context, promotion *models.Promotion) error {
	return r.db.WithContext(ctx).Delete(promotion).Error
}

func (r *promotionRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Promotion{}).Error
}
