package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/models"
)

// AdminMiddleware creates a middleware that ensures the user has admin role.
// This middleware should be used after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return requireUserType(models.UserTypeAdmin, "Admin privileges required")
}

// ProjectManagerMiddleware ensures the user is a project manager.
// This middleware should be used after AuthMiddleware.
func ProjectManagerMiddleware() gin.HandlerFunc {
	return requireUserType(models.UserTypeProjectManager, "Project manager privileges required")
}

func requireUserType(want models.UserType, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get userType from context (set by AuthMiddleware)
		userType, exists := c.Get("userType")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if typeStr, ok := userType.(string); !ok || typeStr != string(want) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": message,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
