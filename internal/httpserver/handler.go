package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "serava-assistant/internal/assistant/delivery/http"
	authHTTP "serava-assistant/internal/auth/delivery/http"
	calendarHTTP "serava-assistant/internal/calendar/delivery/http"
	"serava-assistant/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.authUC, srv.rateLimitRPS, srv.rateLimitBurst)

	api := srv.gin.Group("/api/v1")
	api.Use(mw.RequestID())

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC))
	srv.l.Infof(ctx, "Auth domain registered")

	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, srv.assistantUC), mw)
	srv.l.Infof(ctx, "Assistant domain registered")

	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC), mw)
	srv.l.Infof(ctx, "Calendar domain registered")
}
