package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/middleware"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/services"
)

// TeamController handles team-related API endpoints
type TeamController struct {
	teamService *services.TeamService
}

// NewTeamController creates a new team controller
func NewTeamController() *TeamController {
	return &TeamController{
		teamService: services.NewTeamService(),
	}
}

// RegisterRoutes registers team routes
func (tc *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	teams := router.Group("/teams")
	{
		teams.GET("", tc.ListTeams)
		teams.GET("/:id", tc.GetTeam)
		teams.POST("", middleware.ProjectManagerMiddleware(), tc.CreateTeam)
		teams.PUT("/:id", middleware.ProjectManagerMiddleware(), tc.UpdateTeam)
		teams.DELETE("/:id", tc.DeleteTeam)
	}
}

// ListTeams retrieves teams scoped by the caller's role
func (tc *TeamController) ListTeams(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	teams, err := tc.teamService.ListTeams(userID, userType)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"teams":   teams,
	})
}

// GetTeam retrieves a team with its member profiles resolved
func (tc *TeamController) GetTeam(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	detail, err := tc.teamService.GetTeamDetail(ctx.Param("id"), userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// CreateTeam creates a team owned by the calling manager
func (tc *TeamController) CreateTeam(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	team, err := tc.teamService.CreateTeam(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Team created successfully",
		"team":    team,
	})
}

// UpdateTeam renames a team or replaces its leader/members
func (tc *TeamController) UpdateTeam(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.UpdateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	team, err := tc.teamService.UpdateTeam(ctx.Param("id"), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team updated successfully",
		"team":    team,
	})
}

// DeleteTeam removes a team and everything under its assignments
func (tc *TeamController) DeleteTeam(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	counts, err := tc.teamService.DeleteTeam(ctx.Param("id"), userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team deleted",
		"deleted": counts,
	})
}
