// internal/handlers/address.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// GET /addresses
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	addresses, err := h.addressService.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, addresses)
}

// GET /addresses/:id
func (h *AddressHandler) GetAddress(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.AddressNotFound())
		return
	}

	address, err := h.addressService.GetAddress(c.Request.Context(), userID, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, address)
}

// POST /addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	address, err := h.addressService.CreateAddress(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, address)
}

// PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.AddressNotFound())
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	address, err := h.addressService.UpdateAddress(c.Request.Context(), userID, id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, address)
}

// DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, apperrors.AddressNotFound())
		return
	}

	if err := h.addressService.DeleteAddress(c.Request.Context(), userID, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
