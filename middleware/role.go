package middleware

import (
	"net/http"

	"fleetbook/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin aborts requests whose actor does not hold the admin role.
// It must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("actor")
		actor, ok := v.(models.Actor)
		if !exists || !ok || !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "admin access required",
			})
			return
		}
		c.Next()
	}
}
