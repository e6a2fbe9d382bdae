package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/middleware"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/services"
)

// AssignmentController handles project-to-team assignment endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new assignment controller
func NewAssignmentController() *AssignmentController {
	return &AssignmentController{
		assignmentService: services.NewAssignmentService(),
	}
}

// RegisterRoutes registers assignment routes
func (ac *AssignmentController) RegisterRoutes(router *gin.RouterGroup) {
	assignments := router.Group("/assignments")
	{
		assignments.GET("", ac.ListAssignments)
		assignments.POST("", middleware.ProjectManagerMiddleware(), ac.AssignProject)
		assignments.DELETE("", ac.UnassignProject)
	}
}

// ListAssignments retrieves assignment logs filtered by project and/or team
func (ac *AssignmentController) ListAssignments(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	logs, err := ac.assignmentService.ListAssignments(userID, userType, ctx.Query("projectId"), ctx.Query("teamId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": logs,
	})
}

// AssignProject links a project to a team with a deadline
func (ac *AssignmentController) AssignProject(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.AssignProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	logEntry, err := ac.assignmentService.AssignProject(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Project assigned to team",
		"assignment": logEntry,
	})
}

// UnassignProject removes a project/team link and everything under it
func (ac *AssignmentController) UnassignProject(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	var req dto.UnassignProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	counts, err := ac.assignmentService.UnassignProject(userID, userType == models.UserTypeAdmin, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project unassigned from team",
		"deleted": counts,
	})
}
