// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// POST /contacts (public)
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, contact)
}

// GET /contacts (admin)
func (h *ContactHandler) GetContacts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.contactService.ListContacts(c.Request.Context(), params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.PaginatedResponse(c, *result)
}
