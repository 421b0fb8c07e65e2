package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mpetrov/recipebox/backend/config"
	"github.com/mpetrov/recipebox/backend/internal/api"
	"github.com/mpetrov/recipebox/backend/internal/database"
	"github.com/mpetrov/recipebox/backend/internal/middleware"
	"github.com/mpetrov/recipebox/backend/internal/router"
	"github.com/mpetrov/recipebox/backend/internal/server"
	"github.com/mpetrov/recipebox/backend/internal/service"
)

func main() {
	// Missing required configuration is fatal at startup, not deferred to
	// the first request.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; without it the API runs unthrottled
	var creationLimiter, modificationLimiter *middleware.RateLimiter
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: rate limiting disabled, Redis unavailable: %v", err)
		} else {
			creationLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
			modificationLimiter = middleware.NewRecipeModificationRateLimiter(redisClient)
		}
	}

	// S3 is optional; without it image upload reports a storage error
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: image storage disabled: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	imageService := service.NewImageService(s3Config)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, imageService)

	r := router.SetupRouter(authHandler, recipeHandler, authService, creationLimiter, modificationLimiter)
	srv := server.New(cfg, r)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
