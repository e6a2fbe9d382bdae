package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Everything below requires a valid token
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	projectController := NewProjectController()
	projectController.RegisterRoutes(authRouter)

	teamController := NewTeamController()
	teamController.RegisterRoutes(authRouter)

	assignmentController := NewAssignmentController()
	assignmentController.RegisterRoutes(authRouter)

	taskController := NewTaskController()
	taskController.RegisterRoutes(authRouter)

	subtaskController := NewSubtaskController()
	subtaskController.RegisterRoutes(authRouter)

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminController := NewAdminController()
	adminController.RegisterRoutes(adminGroup)
}
