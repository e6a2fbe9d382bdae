package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/teamtrack-simple/api/v1"
	"github.com/teamtrack-simple/config"
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Connect to database and run migrations
	database.Initialize()

	// Seed the bootstrap admin account if configured
	if err := services.EnsureBootstrapAdmin(); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "teamtrack-api",
			"version": "1.0.0",
		})
	})

	// Versioned API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 TeamTrack starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
