// internal/repository/ingredient_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) FindAll(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.WithContext(ctx).Order("name ASC").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, ingredient *models.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", ingredient.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(ingredient).Error
	})
}
