package middleware

import (
	"net/http"

	"hotelms/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts with 403 unless the authenticated caller holds
// one of the given roles. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You do not have permission to perform this action",
		})
	}
}

// RequireElevated restricts a route to admins and managers.
func RequireElevated() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin, models.RoleManager)
}

// RequireAdmin restricts a route to admins only.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}
