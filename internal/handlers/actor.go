package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpanel/internal/middleware"
)

// requireActor fetches the brand actor injected by middleware.BrandAuth and
// aborts the request when it is missing.
func requireActor(c *gin.Context) (middleware.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return middleware.Actor{}, false
	}
	return actor, true
}
