// internal/handlers/billing.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type BillingHandler struct {
	billingService *services.BillingService
}

func NewBillingHandler(billingService *services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GET /billing-profiles
func (h *BillingHandler) GetProfiles(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	profiles, err := h.billingService.ListProfiles(c.Request.Context(), userID, params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, profiles)
}

// GET /billing-profiles/:id
func (h *BillingHandler) GetProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.BillingProfileNotFound())
		return
	}

	profile, err := h.billingService.GetProfile(c.Request.Context(), userID, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// POST /billing-profiles
func (h *BillingHandler) CreateProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.BillingProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	profile, err := h.billingService.CreateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, profile)
}

// PUT /billing-profiles/:id
func (h *BillingHandler) UpdateProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.BillingProfileNotFound())
		return
	}

	var req services.BillingProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	profile, err := h.billingService.UpdateProfile(c.Request.Context(), userID, id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// DELETE /billing-profiles/:id
func (h *BillingHandler) DeleteProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.BillingProfileNotFound())
		return
	}

	if err := h.billingService.DeleteProfile(c.Request.Context(), userID, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
