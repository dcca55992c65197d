package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the OAuth surface. The redirect and callback are public
// by nature; logout requires nothing beyond the user id it removes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/google", h.GoogleRedirect)
		authGroup.GET("/google/callback", h.GoogleCallback)
		authGroup.DELETE("/logout", h.Logout)
	}
}
