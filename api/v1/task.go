package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/middleware"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/services"
)

// TaskController handles task endpoints
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new task controller
func NewTaskController() *TaskController {
	return &TaskController{
		taskService: services.NewTaskService(),
	}
}

// RegisterRoutes registers task routes
func (tc *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", tc.ListTasks)
		tasks.GET("/mine", tc.ListMyTasks)
		tasks.GET("/:id", tc.GetTask)
		tasks.POST("", middleware.ProjectManagerMiddleware(), tc.CreateTask)
		tasks.POST("/:id/submit", tc.SubmitTask)
		tasks.POST("/:id/approve", tc.ApproveTask)
		tasks.POST("/:id/reassign", tc.ReassignTask)
	}
}

// ListTasks retrieves the tasks under a (project, team) assignment
func (tc *TaskController) ListTasks(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	projectID := ctx.Query("projectId")
	teamID := ctx.Query("teamId")
	if projectID == "" || teamID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "projectId and teamId are required",
		})
		return
	}

	tasks, err := tc.taskService.ListTasks(userID, userType == models.UserTypeAdmin, projectID, teamID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
	})
}

// ListMyTasks retrieves every task assigned to the caller
func (tc *TaskController) ListMyTasks(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	tasks, err := tc.taskService.ListMyTasks(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
	})
}

// GetTask retrieves a single task
func (tc *TaskController) GetTask(ctx *gin.Context) {
	userID, _, userType := currentUser(ctx)

	task, err := tc.taskService.GetTask(ctx.Param("id"), userID, userType == models.UserTypeAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}

// CreateTask creates a task under an existing assignment
func (tc *TaskController) CreateTask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	task, err := tc.taskService.CreateTask(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"task":    task,
	})
}

// SubmitTask records submitted work and moves the task to In Progress
func (tc *TaskController) SubmitTask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.SubmitWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	task, err := tc.taskService.SubmitTask(ctx.Param("id"), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task submitted",
		"task":    task,
	})
}

// ApproveTask moves a submitted task to Completed
func (tc *TaskController) ApproveTask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	task, err := tc.taskService.ApproveTask(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task approved",
		"task":    task,
	})
}

// ReassignTask sends a task back with feedback
func (tc *TaskController) ReassignTask(ctx *gin.Context) {
	userID, _, _ := currentUser(ctx)

	var req dto.ReassignWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	task, err := tc.taskService.ReassignTask(ctx.Param("id"), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task sent back for rework",
		"task":    task,
	})
}
