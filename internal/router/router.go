package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mpetrov/recipebox/backend/internal/api"
	"github.com/mpetrov/recipebox/backend/internal/middleware"
	"github.com/mpetrov/recipebox/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	authService service.IAuthService,
	creationLimiter *middleware.RateLimiter,
	modificationLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	// Health check endpoint (no auth required)
	router.GET("/api/health", api.HealthCheck)

	root := router.Group("/api")

	// Auth routes
	authHandler.RegisterRoutes(root)

	// Recipe routes sit behind the mandatory auth gate
	protected := root.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	recipeHandler.RegisterRoutes(protected, creationLimiter, modificationLimiter)

	// Any unmatched path gets the standard error envelope
	router.NoRoute(api.NotFound)

	return router
}
