package http

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant surface behind auth and rate limiting.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	aiGroup := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		aiGroup.POST("/prompt", h.ProcessPrompt)
	}
}
