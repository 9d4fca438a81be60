// internal/handlers/promotion.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type PromotionHandler struct {
	promotionService *services.PromotionService
}

func NewPromotionHandler(promotionService *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// GET /promotions
func (h *PromotionHandler) GetPromotions(c *gin.Context) {
	promotions, err := h.promotionService.ListPromotions(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, promotions)
}

// GET /promotions/:id
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.PromotionNotFound(c.Param("id")))
		return
	}

	promotion, err := h.promotionService.GetPromotion(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, promotion)
}

// POST /promotions
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req services.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	promotion, err := h.promotionService.CreatePromotion(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, promotion)
}

// PATCH /promotions/:id
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.PromotionNotFound(c.Param("id")))
		return
	}

	var req services.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	promotion, err := h.promotionService.UpdatePromotion(c.Request.Context(), id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, promotion)
}

// DELETE /promotions/:id
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.PromotionNotFound(c.Param("id")))
		return
	}

	if err := h.promotionService.DeletePromotion(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// DELETE /promotions
func (h *PromotionHandler) DeleteAllPromotions(c *gin.Context) {
	if err := h.promotionService.DeleteAllPromotions(c.Request.Context()); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
