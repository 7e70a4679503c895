package handlers

import (
	"net/http"

	"fleetbook/models"

	"github.com/gin-gonic/gin"
)

// respond writes the standard success envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// actorFrom reads the actor placed in the context by the auth middleware.
func actorFrom(c *gin.Context) (models.Actor, bool) {
	v, exists := c.Get("actor")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "authentication required",
		})
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "authentication required",
		})
		return models.Actor{}, false
	}
	return actor, true
}
