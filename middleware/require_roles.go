package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows only the listed roles through. AuthMiddleware must run
// first so the role is present in the context.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have access to this resource"})
		c.Abort()
	}
}
