// internal/repository/recipe_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/models"
)

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	dbQuery := r.db.WithContext(ctx).Model(&models.Recipe{})
	if query != "" {
		term := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.Where("LOWER(title) LIKE ? OR LOWER(text) LIKE ?", term, term)
	}

	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := dbQuery.
		Preload("RecipeIngredients").
		Preload("RecipeIngredients.Ingredient").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&recipes).Error
	return recipes, total, err
}

func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("RecipeIngredients").
		Preload("RecipeIngredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe, replaceIngredients bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replaceIngredients {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			for i := range recipe.RecipeIngredients {
				recipe.RecipeIngredients[i].ID = uuid.Nil
				recipe.RecipeIngredients[i].RecipeID = recipe.ID
			}
			if len(recipe.RecipeIngredients) > 0 {
				if err := tx.Omit("Ingredient").Create(&recipe.RecipeIngredients).Error; err != nil {
					return err
				}
			}
		}
		return tx.Omit("RecipeIngredients").Save(recipe).Error
	})
}

func (r *recipeRepository) Delete(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}
