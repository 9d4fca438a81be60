// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

// UserHandler exposes the admin account endpoints.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /users/:param (UUID or email)
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("param"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// DELETE /users/:param
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("param")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
