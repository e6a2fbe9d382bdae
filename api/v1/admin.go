package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/services"
)

// AdminController handles account administration endpoints
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new admin controller
func NewAdminController() *AdminController {
	return &AdminController{
		adminService: services.NewAdminService(),
	}
}

// RegisterRoutes registers admin routes. The group is expected to be gated
// by AdminMiddleware.
func (ac *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users", ac.ListUsers)
	router.POST("/project-managers", ac.CreateProjectManager)
	router.DELETE("/project-managers", ac.DeleteProjectManagers)
}

// ListUsers retrieves accounts, optionally filtered by userType
func (ac *AdminController) ListUsers(ctx *gin.Context) {
	users, err := ac.adminService.ListUsers(ctx.Query("userType"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// CreateProjectManager promotes or creates a project manager account
func (ac *AdminController) CreateProjectManager(ctx *gin.Context) {
	var req dto.CreateProjectManagerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	user, err := ac.adminService.CreateProjectManager(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project manager created successfully",
		"user":    user,
	})
}

// DeleteProjectManagers deletes project managers and everything they own.
// Invalid entries are skipped and reported, not fatal; when anything was
// skipped the status is 207 so the caller inspects per-item outcomes.
func (ac *AdminController) DeleteProjectManagers(ctx *gin.Context) {
	_, adminEmail, _ := currentUser(ctx)

	var req dto.DeleteProjectManagersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	result, err := ac.adminService.DeleteProjectManagers(adminEmail, req.Emails)
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if len(result.InvalidOrSkippedEmails) > 0 {
		status = http.StatusMultiStatus
	}

	ctx.JSON(status, gin.H{
		"success":                len(result.DeletedEmails) > 0,
		"message":                "Project manager deletion processed",
		"deleted":                result.Deleted,
		"deletedEmails":          result.DeletedEmails,
		"invalidOrSkippedEmails": result.InvalidOrSkippedEmails,
	})
}
