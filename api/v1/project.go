package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/middleware"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/services"
)

// ProjectController handles project-related API endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController() *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(),
	}
}

// RegisterRoutes registers project routes. Creation, update, completion and
// deletion are manager-scoped via ownership checks in the service layer.
func (pc *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", pc.ListProjects)
		projects.POST("", middleware.ProjectManagerMiddleware(), pc.CreateProject)
		projects.GET("/:id", pc.GetProject)
		projects.PUT("/:id", pc.UpdateProject)
		projects.POST("/:id/complete", pc.CompleteProject)
		projects.DELETE("/:id", pc.DeleteProject)
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (pc *ProjectController) ListProjects(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))

	filter := dto.ProjectFilter{
		UserID:    userID,
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      page,
		PageSize:  pageSize,
		IsAdmin:   userType == models.UserTypeAdmin,
	}

	response, err := pc.projectService.ListProjects(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    response,
	})
}

// CreateProject creates a new project owned by the calling manager
func (pc *ProjectController) CreateProject(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := pc.projectService.CreateProject(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": project,
	})
}

// GetProject retrieves a project with its team assignments
func (pc *ProjectController) GetProject(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	detail, err := pc.projectService.GetProjectDetail(ctx.Param("id"), userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// UpdateProject changes a project's title and description
func (pc *ProjectController) UpdateProject(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := pc.projectService.UpdateProject(ctx.Param("id"), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"project": project,
	})
}

// CompleteProject marks a project as completed
func (pc *ProjectController) CompleteProject(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	project, err := pc.projectService.CompleteProject(ctx.Param("id"), userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project completed",
		"project": project,
	})
}

// DeleteProject removes a project and everything under its assignments
func (pc *ProjectController) DeleteProject(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	counts, err := pc.projectService.DeleteProject(ctx.Param("id"), userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted",
		"deleted": counts,
	})
}
