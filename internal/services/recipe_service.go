// internal/services/recipe_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type RecipeService struct {
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
}

type RecipeRequest struct {
	Title         string   `json:"title" validate:"required,min=2,max=255"`
	Text          string   `json:"text" validate:"required"`
	IngredientIDs []string `json:"ingredient_ids,omitempty" validate:"omitempty,dive,uuid"`
}

type IngredientRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

func NewRecipeService(recipes repository.RecipeRepository, ingredients repository.IngredientRepository) *RecipeService {
	return &RecipeService{recipes: recipes, ingredients: ingredients}
}

func (s *RecipeService) SearchRecipes(ctx context.Context, params utils.PaginationParams) (*utils.PaginationResult, error) {
	recipes, total, err := s.recipes.Search(ctx, params.Search, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	result := utils.CreatePaginationResult(recipes, total, params)
	return &result, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.RecipeNotFound())
	}
	return recipe, nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, req *RecipeRequest) (*models.Recipe, error) {
	links, err := s.resolveIngredients(ctx, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:             req.Title,
		Text:              req.Text,
		RecipeIngredients: links,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return s.GetRecipe(ctx, recipe.ID)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *RecipeRequest) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, apperrors.RecipeNotFound())
	}

	links, err := s.resolveIngredients(ctx, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe.Title = req.Title
	recipe.Text = req.Text
	recipe.RecipeIngredients = links

	if err := s.recipes.Update(ctx, recipe, true); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return s.GetRecipe(ctx, id)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.RecipeNotFound())
	}
	if err := s.recipes.Delete(ctx, recipe); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

func (s *RecipeService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return ingredients, nil
}

func (s *RecipeService) CreateIngredient(ctx context.Context, req *IngredientRequest) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{Name: req.Name}
	if err := s.ingredients.Create(ctx, ingredient); err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return ingredient, nil
}

func (s *RecipeService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	ingredient, err := s.ingredients.FindByID(ctx, id)
	if err != nil {
		return apperrors.FromDB(err, apperrors.IngredientNotFound())
	}
	if err := s.ingredients.Delete(ctx, ingredient); err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

// resolveIngredients validates every referenced ingredient before any write.
func (s *RecipeService) resolveIngredients(ctx context.Context, ingredientIDs []string) ([]models.RecipeIngredient, error) {
	if len(ingredientIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(ingredientIDs))
	for _, raw := range ingredientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.IngredientNotFound()
		}
		ids = append(ids, id)
	}

	found, err := s.ingredients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	if len(found) != len(ids) {
		return nil, apperrors.IngredientNotFound()
	}

	links := make([]models.RecipeIngredient, 0, len(ids))
	for _, id := range ids {
		links = append(links, models.RecipeIngredient{IngredientID: id})
	}
	return links, nil
}
