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

// SubtaskService handles subtask creation under a parent task and the
// leader-scoped subtask status workflow.
type SubtaskService struct {
	subtaskRepo *repositories.SubtaskRepository
	taskRepo    *repositories.TaskRepository
	logRepo     *repositories.AssignedProjectLogRepository
	teamRepo    *repositories.TeamRepository
}

// NewSubtaskService creates a new subtask service instance
func NewSubtaskService() *SubtaskService {
	return &SubtaskService{
		subtaskRepo: repositories.NewSubtaskRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		logRepo:     repositories.NewAssignedProjectLogRepository(),
		teamRepo:    repositories.NewTeamRepository(),
	}
}

// resolveParent walks subtask's parent task -> log -> team
func (s *SubtaskService) resolveParent(taskID string) (models.Task, models.Team, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Task{}, models.Team{}, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}

	logEntry, found, err := s.logRepo.FindByTask(taskID)
	if err != nil {
		return models.Task{}, models.Team{}, err
	}
	if !found {
		return models.Task{}, models.Team{}, fmt.Errorf("assignment log for task %s: %w", taskID, ErrNotFound)
	}

	team, err := s.teamRepo.FindByID(logEntry.TeamID)
	if err != nil {
		return models.Task{}, models.Team{}, fmt.Errorf("team %s: %w", logEntry.TeamID, ErrNotFound)
	}

	return task, team, nil
}

// CreateSubtask creates a subtask under a parent task. Only the leader of
// the team that owns the parent task may create one. AssignedTo is a single
// member id, or the __all__ sentinel meaning every member except the leader.
// The insert and the append to the parent's subtask list share a transaction.
func (s *SubtaskService) CreateSubtask(userID string, req dto.CreateSubtaskRequest) (models.Subtask, error) {
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return models.Subtask{}, fmt.Errorf("deadline must be RFC 3339: %w", ErrInvalid)
	}

	task, team, err := s.resolveParent(req.TaskID)
	if err != nil {
		return models.Subtask{}, err
	}

	if team.TeamLeader != userID {
		return models.Subtask{}, fmt.Errorf("only the leader of team %s can create subtasks: %w", team.TeamID, ErrForbidden)
	}

	var assignees []string
	if req.AssignedTo == dto.AssignToAll {
		assignees = utils.Remove(team.Members, team.TeamLeader)
		if len(assignees) == 0 {
			return models.Subtask{}, fmt.Errorf("team %s has no members besides the leader: %w", team.TeamID, ErrInvalid)
		}
	} else {
		if !team.HasMember(req.AssignedTo) {
			return models.Subtask{}, fmt.Errorf("assignee %s is not a member of team %s: %w", req.AssignedTo, team.TeamID, ErrInvalid)
		}
		assignees = []string{req.AssignedTo}
	}

	subtask := models.Subtask{
		ParentTaskID: task.TaskID,
		Title:        req.Title,
		Description:  req.Description,
		Deadline:     deadline,
		Status:       models.StatusPending,
		AssignedTo:   datatypes.NewJSONSlice(assignees),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "Subtask")
		if err != nil {
			return err
		}
		subtask.SubtaskID = id

		if err := tx.Create(&subtask).Error; err != nil {
			return err
		}

		// Re-read the parent inside the transaction so two concurrent
		// subtask creations cannot lose an append.
		var parent models.Task
		if err := tx.First(&parent, "task_id = ?", task.TaskID).Error; err != nil {
			return err
		}
		parent.SubTasks = append(parent.SubTasks, subtask.SubtaskID)
		return tx.Save(&parent).Error
	})
	if err != nil {
		return models.Subtask{}, err
	}

	return subtask, nil
}

// ListSubtasks returns the subtasks under a task, visible to the team's
// leader and members, the subtask assignees and the admin.
func (s *SubtaskService) ListSubtasks(taskID, userID string, isAdmin bool) ([]models.Subtask, error) {
	_, team, err := s.resolveParent(taskID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && team.TeamLeader != userID && !team.HasMember(userID) {
		return nil, fmt.Errorf("no access to subtasks of task %s: %w", taskID, ErrForbidden)
	}

	return s.subtaskRepo.FindByParent(taskID)
}

// ListMySubtasks returns every subtask the user is an assignee of
func (s *SubtaskService) ListMySubtasks(userID string) ([]models.Subtask, error) {
	return s.subtaskRepo.FindAssignedTo(userID)
}

// SubmitSubtask moves a subtask from Pending or Re Assigned to In Progress,
// recording the submitted work. Assignees only.
func (s *SubtaskService) SubmitSubtask(subtaskID, userID string, req dto.SubmitWorkRequest) (models.Subtask, error) {
	subtask, err := s.subtaskRepo.FindByID(subtaskID)
	if err != nil {
		return models.Subtask{}, fmt.Errorf("subtask %s: %w", subtaskID, ErrNotFound)
	}

	if !subtask.IsAssignedTo(userID) {
		return models.Subtask{}, fmt.Errorf("only an assignee can submit subtask %s: %w", subtaskID, ErrForbidden)
	}

	if subtask.Status != models.StatusPending && subtask.Status != models.StatusReAssigned {
		return models.Subtask{}, fmt.Errorf("cannot submit a subtask in status %q: %w", subtask.Status, ErrInvalid)
	}

	subtask.Status = models.StatusInProgress
	subtask.GitHubURL = req.GitHubURL
	subtask.Context = req.Context
	subtask.SubmittedBy = userID
	if err := s.subtaskRepo.Update(subtask); err != nil {
		return models.Subtask{}, err
	}
	return subtask, nil
}

// ApproveSubtask moves a submitted subtask to Completed. Team leader only.
func (s *SubtaskService) ApproveSubtask(subtaskID, userID string) (models.Subtask, error) {
	subtask, err := s.subtaskRepo.FindByID(subtaskID)
	if err != nil {
		return models.Subtask{}, fmt.Errorf("subtask %s: %w", subtaskID, ErrNotFound)
	}

	_, team, err := s.resolveParent(subtask.ParentTaskID)
	if err != nil {
		return models.Subtask{}, err
	}

	if team.TeamLeader != userID {
		return models.Subtask{}, fmt.Errorf("only the team leader can approve subtask %s: %w", subtaskID, ErrForbidden)
	}

	if subtask.Status != models.StatusInProgress {
		return models.Subtask{}, fmt.Errorf("cannot approve a subtask in status %q: %w", subtask.Status, ErrInvalid)
	}

	subtask.Status = models.StatusCompleted
	if err := s.subtaskRepo.Update(subtask); err != nil {
		return models.Subtask{}, err
	}
	return subtask, nil
}

// ReassignSubtask sends a submitted or completed subtask back with feedback,
// clearing the submitted work. Team leader only.
func (s *SubtaskService) ReassignSubtask(subtaskID, userID string, req dto.ReassignWorkRequest) (models.Subtask, error) {
	subtask, err := s.subtaskRepo.FindByID(subtaskID)
	if err != nil {
		return models.Subtask{}, fmt.Errorf("subtask %s: %w", subtaskID, ErrNotFound)
	}

	_, team, err := s.resolveParent(subtask.ParentTaskID)
	if err != nil {
		return models.Subtask{}, err
	}

	if team.TeamLeader != userID {
		return models.Subtask{}, fmt.Errorf("only the team leader can reassign subtask %s: %w", subtaskID, ErrForbidden)
	}

	if subtask.Status != models.StatusInProgress && subtask.Status != models.StatusCompleted {
		return models.Subtask{}, fmt.Errorf("cannot reassign a subtask in status %q: %w", subtask.Status, ErrInvalid)
	}

	subtask.Status = models.StatusReAssigned
	subtask.Context = req.Feedback
	subtask.GitHubURL = ""
	subtask.SubmittedBy = ""
	if err := s.subtaskRepo.Update(subtask); err != nil {
		return models.Subtask{}, err
	}
	return subtask, nil
}
