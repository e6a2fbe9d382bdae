package services

import (
	"fmt"
	"time"

	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/repositories"
	"github.com/teamtrack-simple/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskService handles task creation, the assignment-log bookkeeping that
// goes with it, and the task status workflow.
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	logRepo     *repositories.AssignedProjectLogRepository
	teamRepo    *repositories.TeamRepository
	projectRepo *repositories.ProjectRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(),
		logRepo:     repositories.NewAssignedProjectLogRepository(),
		teamRepo:    repositories.NewTeamRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// taskContext is the ownership chain of a task, re-derived per request by
// walking task -> log -> team/project.
type taskContext struct {
	task    models.Task
	log     models.AssignedProjectLog
	team    models.Team
	project models.Project
}

// resolveTask walks the reference chain for an existing task
func (s *TaskService) resolveTask(taskID string) (taskContext, error) {
	var tc taskContext
	var err error

	tc.task, err = s.taskRepo.FindByID(taskID)
	if err != nil {
		return tc, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}

	logEntry, found, err := s.logRepo.FindByTask(taskID)
	if err != nil {
		return tc, err
	}
	if !found {
		return tc, fmt.Errorf("assignment log for task %s: %w", taskID, ErrNotFound)
	}
	tc.log = logEntry

	tc.team, err = s.teamRepo.FindByID(logEntry.TeamID)
	if err != nil {
		return tc, fmt.Errorf("team %s: %w", logEntry.TeamID, ErrNotFound)
	}

	tc.project, err = s.projectRepo.FindByID(logEntry.ProjectID)
	if err != nil {
		return tc, fmt.Errorf("project %s: %w", logEntry.ProjectID, ErrNotFound)
	}

	return tc, nil
}

// CreateTask creates a task under an existing (project, team) assignment.
// The new TaskID is appended to the log's task list and a pending project
// flips to "In Progress", all in the same transaction as the insert, so a
// failed bookkeeping step never leaves an orphan task behind.
func (s *TaskService) CreateTask(userID string, req dto.CreateTaskRequest) (models.Task, error) {
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return models.Task{}, fmt.Errorf("deadline must be RFC 3339: %w", ErrInvalid)
	}

	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("project %s: %w", req.ProjectID, ErrNotFound)
	}

	if project.CreatedBy != userID {
		return models.Task{}, fmt.Errorf("only the owning project manager can create tasks: %w", ErrForbidden)
	}

	team, err := s.teamRepo.FindByID(req.TeamID)
	if err != nil {
		return models.Task{}, fmt.Errorf("team %s: %w", req.TeamID, ErrNotFound)
	}

	logEntry, err := s.logRepo.FindByProjectAndTeam(req.ProjectID, req.TeamID)
	if err != nil {
		return models.Task{}, fmt.Errorf("project %s is not assigned to team %s: %w", req.ProjectID, req.TeamID, ErrNotFound)
	}

	// Empty assignedTo means the whole team
	assignees := utils.Dedupe(req.AssignedTo)
	if len(assignees) == 0 {
		assignees = team.Members
	} else {
		for _, id := range assignees {
			if !team.HasMember(id) {
				return models.Task{}, fmt.Errorf("assignee %s is not a member of team %s: %w", id, team.TeamID, ErrInvalid)
			}
		}
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Status:      models.StatusPending,
		AssignedTo:  datatypes.NewJSONSlice(assignees),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "Task")
		if err != nil {
			return err
		}
		task.TaskID = id

		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		// Re-read the log inside the transaction so two concurrent task
		// creations cannot lose an append.
		var current models.AssignedProjectLog
		if err := tx.First(&current, "assign_project_id = ?", logEntry.AssignProjectID).Error; err != nil {
			return err
		}
		current.TasksIDs = append(current.TasksIDs, task.TaskID)
		if err := tx.Save(&current).Error; err != nil {
			return err
		}

		// First task moves a pending project to In Progress
		if project.Status == models.ProjectPending {
			if err := tx.Model(&models.Project{}).
				Where("project_id = ?", project.ProjectID).
				Update("status", models.ProjectInProgress).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// GetTask returns a task to its assignees, the team leader, the owning
// project manager or the admin.
func (s *TaskService) GetTask(taskID, userID string, isAdmin bool) (models.Task, error) {
	tc, err := s.resolveTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	allowed := isAdmin ||
		tc.task.IsAssignedTo(userID) ||
		tc.team.TeamLeader == userID ||
		tc.project.CreatedBy == userID
	if !allowed {
		return models.Task{}, fmt.Errorf("no access to task %s: %w", taskID, ErrForbidden)
	}

	return tc.task, nil
}

// ListTasks returns the tasks under a (project, team) assignment, visible to
// the owning manager, the team's leader and members, and the admin.
func (s *TaskService) ListTasks(userID string, isAdmin bool, projectID, teamID string) ([]models.Task, error) {
	logEntry, err := s.logRepo.FindByProjectAndTeam(projectID, teamID)
	if err != nil {
		return nil, fmt.Errorf("project %s is not assigned to team %s: %w", projectID, teamID, ErrNotFound)
	}

	if !isAdmin {
		team, err := s.teamRepo.FindByID(teamID)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
		}
		project, err := s.projectRepo.FindByID(projectID)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		allowed := project.CreatedBy == userID || team.TeamLeader == userID || team.HasMember(userID)
		if !allowed {
			return nil, fmt.Errorf("no access to tasks of project %s: %w", projectID, ErrForbidden)
		}
	}

	return s.taskRepo.FindByIDs(logEntry.TasksIDs)
}

// ListMyTasks returns every task the user is an assignee of
func (s *TaskService) ListMyTasks(userID string) ([]models.Task, error) {
	return s.taskRepo.FindAssignedTo(userID)
}

// SubmitTask moves a task from Pending (or Re Assigned, after feedback) to
// In Progress, recording the submitted work. Assignees only.
func (s *TaskService) SubmitTask(taskID, userID string, req dto.SubmitWorkRequest) (models.Task, error) {
	tc, err := s.resolveTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	if !tc.task.IsAssignedTo(userID) {
		return models.Task{}, fmt.Errorf("only an assignee can submit task %s: %w", taskID, ErrForbidden)
	}

	if tc.task.Status != models.StatusPending && tc.task.Status != models.StatusReAssigned {
		return models.Task{}, fmt.Errorf("cannot submit a task in status %q: %w", tc.task.Status, ErrInvalid)
	}

	tc.task.Status = models.StatusInProgress
	tc.task.GitHubURL = req.GitHubURL
	tc.task.Context = req.Context
	tc.task.SubmittedBy = userID
	if err := s.taskRepo.Update(tc.task); err != nil {
		return models.Task{}, err
	}
	return tc.task, nil
}

// ApproveTask moves a submitted task to Completed. Owning manager only.
func (s *TaskService) ApproveTask(taskID, userID string) (models.Task, error) {
	tc, err := s.resolveTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	if tc.project.CreatedBy != userID {
		return models.Task{}, fmt.Errorf("only the owning project manager can approve task %s: %w", taskID, ErrForbidden)
	}

	if tc.task.Status != models.StatusInProgress {
		return models.Task{}, fmt.Errorf("cannot approve a task in status %q: %w", tc.task.Status, ErrInvalid)
	}

	tc.task.Status = models.StatusCompleted
	if err := s.taskRepo.Update(tc.task); err != nil {
		return models.Task{}, err
	}
	return tc.task, nil
}

// ReassignTask sends a submitted or completed task back with feedback,
// clearing the submitted work. Owning manager or team leader.
func (s *TaskService) ReassignTask(taskID, userID string, req dto.ReassignWorkRequest) (models.Task, error) {
	tc, err := s.resolveTask(taskID)
	if err != nil {
		return models.Task{}, err
	}

	if tc.project.CreatedBy != userID && tc.team.TeamLeader != userID {
		return models.Task{}, fmt.Errorf("only the owning project manager or the team leader can reassign task %s: %w", taskID, ErrForbidden)
	}

	if tc.task.Status != models.StatusInProgress && tc.task.Status != models.StatusCompleted {
		return models.Task{}, fmt.Errorf("cannot reassign a task in status %q: %w", tc.task.Status, ErrInvalid)
	}

	tc.task.Status = models.StatusReAssigned
	tc.task.Context = req.Feedback
	tc.task.GitHubURL = ""
	tc.task.SubmittedBy = ""
	if err := s.taskRepo.Update(tc.task); err != nil {
		return models.Task{}, err
	}
	return tc.task, nil
}
