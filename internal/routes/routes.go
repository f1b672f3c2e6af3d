package routes

import (
	"cache-service-api/internal/handlers"
	"cache-service-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204) // This depends on the implementation of the frontend
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Cache service is running in Health Check Endpoint",
		})
	})

	// Prometheus metrics endpoint
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		// Login endpoint
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Cache entry endpoints
		protectedRoutes.POST("/cache", handlers.CreateEntry)
		protectedRoutes.GET("/cache/:key", handlers.GetEntry)
		protectedRoutes.PUT("/cache/:key", handlers.UpdateEntry)
		protectedRoutes.DELETE("/cache/:key", handlers.DeleteEntry)
		// Raw operation envelope (legacy verbs included)
		protectedRoutes.POST("/execute", handlers.Execute)
		// Audit trail
		protectedRoutes.GET("/audit/events", handlers.GetAuditEvents)
		// Event stream over websocket
		protectedRoutes.GET("/events/ws", handlers.EventStreamHandler)
	}

	return ginRouter
}
