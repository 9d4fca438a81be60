// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sintacc/sintacc-backend/internal/models"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, "Token invalido")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, "Token invalido o expirado")
			c.Abort()
			return
		}

		c.Set(utils.ContextUserID, claims.UserID)
		c.Set(utils.ContextEmail, claims.Email)
		c.Set(utils.ContextRoles, claims.Roles)
		c.Next()
	}
}

func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := utils.GetRolesFromContext(c)
		for _, role := range roles {
			if role == models.RoleAdmin {
				c.Next()
				return
			}
		}

		utils.ForbiddenResponse(c, "")
		c.Abort()
	}
}

func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set(utils.ContextUserID, claims.UserID)
		c.Set(utils.ContextEmail, claims.Email)
		c.Set(utils.ContextRoles, claims.Roles)
		c.Next()
	}
}
