package handlers

import (
	_ "eks-go-app/api/docs"
	"eks-go-app/internal/config"
	"eks-go-app/internal/middleware"
	"eks-go-app/internal/otelutils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the routes in priority order. Anything not listed,
// including other methods on the same paths, falls through to gin's 404.
func NewRouter(cfg config.Config, metricsBody []byte, telemetry *otelutils.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	// AccessLog wraps Recovery so recovered panics are logged with their 500.
	r.Use(middleware.AccessLog(telemetry), gin.Recovery())

	r.GET("/health", HealthCheck(cfg.Environment))
	r.GET("/api/hello", Hello)
	r.GET("/metrics", Metrics(metricsBody))
	r.GET("/", Index)

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
