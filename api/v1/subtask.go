package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/services"
)

// SubtaskController handles subtask endpoints
type SubtaskController struct {
	subtaskService *services.SubtaskService
}

// NewSubtaskController creates a new subtask controller
func NewSubtaskController() *SubtaskController {
	return &SubtaskController{
		subtaskService: services.NewSubtaskService(),
	}
}

// RegisterRoutes registers subtask routes. Creation and approval are
// leader-scoped via the ownership walk in the service layer.
func (sc *SubtaskController) RegisterRoutes(router *gin.RouterGroup) {
	subtasks := router.Group("/subtasks")
	{
		subtasks.GET("", sc.ListSubtasks)
		subtasks.GET("/mine", sc.ListMySubtasks)
		subtasks.POST("", sc.CreateSubtask)
		subtasks.POST("/:id/submit", sc.SubmitSubtask)
		subtasks.POST("/:id/approve", sc.ApproveSubtask)
		subtasks.POST("/:id/reassign", sc.ReassignSubtask)
	}
}

// ListSubtasks retrieves the subtasks under a task
func (sc *SubtaskController) ListSubtasks(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	taskID := ctx.Query("taskId")
	if taskID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "taskId is required",
		})
		return
	}

	subtasks, err := sc.subtaskService.ListSubtasks(taskID, userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"subtasks": subtasks,
	})
}

// ListMySubtasks retrieves every subtask assigned to the caller
func (sc *SubtaskController) ListMySubtasks(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	subtasks, err := sc.subtaskService.ListMySubtasks(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"subtasks": subtasks,
	})
}

// CreateSubtask creates a subtask under a parent task
func (sc *SubtaskController) CreateSubtask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.CreateSubtaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	subtask, err := sc.subtaskService.CreateSubtask(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Subtask created successfully",
		"subtask": subtask,
	})
}

// SubmitSubtask records submitted work and moves the subtask to In Progress
func (sc *SubtaskController) SubmitSubtask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.SubmitWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	subtask, err := sc.subtaskService.SubmitSubtask(ctx.Param("id"), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subtask submitted",
		"subtask": subtask,
	})
}

// ApproveSubtask moves a submitted subtask to Completed
func (sc *SubtaskController) ApproveSubtask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	subtask, err := sc.subtaskService.ApproveSubtask(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subtask approved",
		"subtask": subtask,
	})
}

// ReassignSubtask sends a subtask back with feedback
func (sc *SubtaskController) ReassignSubtask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.ReassignWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	subtask, err := sc.subtaskService.ReassignSubtask(ctx.Param("id"), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subtask sent back for rework",
		"subtask": subtask,
	})
}
