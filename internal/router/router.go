package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "claimflow/docs" // registers the generated OpenAPI document
	"claimflow/internal/config"
	"claimflow/internal/handler"
	"claimflow/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	logger *slog.Logger,
	claimH *handler.ClaimHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Claim routes
	claims := v1.Group("/claims")
	claims.Use(middleware.BodyLimit(handler.BatchBodyLimit(cfg.Upload)))
	claims.POST("/process", claimH.Process)
	claims.POST("/export", claimH.Export)

	return r
}
