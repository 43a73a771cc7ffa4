package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "prompt-relay-api/internal/docs"
	"prompt-relay-api/internal/middleware"
	"prompt-relay-api/internal/services"
)

// MaxRequestBodySize caps prompt request bodies on the local server
const MaxRequestBodySize = 1 << 20

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	PromptService     services.PromptService
	RequestsPerSecond float64
	Burst             int
	Version           string
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	promptHandler := NewPromptHandler(config.PromptService)

	version := config.Version
	if version == "" {
		version = "1.0.0"
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"version":   version,
		})
	})

	// Every verb reaches the handler; OPTIONS is answered there as a preflight
	prompt := router.Group("/prompt")
	prompt.Use(middleware.RateLimiter(config.RequestsPerSecond, config.Burst))
	prompt.Use(middleware.RequestSizeLimit(MaxRequestBodySize))
	{
		prompt.Any("", promptHandler.Prompt)
	}
}
