package http

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/middleware"
)

// RegisterRoutes maps the direct calendar CRUD surface behind auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	calGroup := rg.Group("/calendar", mw.Auth(), mw.RateLimit())
	{
		calGroup.GET("/events", h.ListEvents)
		calGroup.POST("/events", h.CreateEvent)
		calGroup.PUT("/events/:id", h.UpdateEvent)
		calGroup.DELETE("/events/:id", h.DeleteEvent)
	}
}
