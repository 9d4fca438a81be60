// internal/utils/context.go
package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRoles  = "roles"
)

func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	idStr, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetRolesFromContext(c *gin.Context) []string {
	if value, exists := c.Get(ContextRoles); exists {
		if roles, ok := value.([]string); ok {
			return roles
		}
	}
	return nil
}
