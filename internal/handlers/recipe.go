// internal/handlers/recipe.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// GET /recipes
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.recipeService.SearchRecipes(c.Request.Context(), params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.RecipeNotFound())
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, recipe)
}

// POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req services.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, recipe)
}

// PUT /recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.RecipeNotFound())
		return
	}

	var req services.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, recipe)
}

// DELETE /recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.RecipeNotFound())
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// GET /ingredients
func (h *RecipeHandler) GetIngredients(c *gin.Context) {
	ingredients, err := h.recipeService.ListIngredients(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, ingredients)
}

// POST /ingredients
func (h *RecipeHandler) CreateIngredient(c *gin.Context) {
	var req services.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ingredient, err := h.recipeService.CreateIngredient(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, ingredient)
}

// DELETE /ingredients/:id
func (h *RecipeHandler) DeleteIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.IngredientNotFound())
		return
	}

	if err := h.recipeService.DeleteIngredient(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
