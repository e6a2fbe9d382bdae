package services

import (
	"fmt"
	"time"

	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/repositories"
	"github.com/teamtrack-simple/utils"
	"gorm.io/gorm"
)

// AssignmentService handles the project-to-team assignment logs
type AssignmentService struct {
	logRepo     *repositories.AssignedProjectLogRepository
	projectRepo *repositories.ProjectRepository
	teamRepo    *repositories.TeamRepository
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService() *AssignmentService {
	return &AssignmentService{
		logRepo:     repositories.NewAssignedProjectLogRepository(),
		projectRepo: repositories.NewProjectRepository(),
		teamRepo:    repositories.NewTeamRepository(),
	}
}

// AssignProject links a project to a team with a deadline. One log per
// (project, team) pair; assigning twice is a conflict.
func (s *AssignmentService) AssignProject(userID string, req dto.AssignProjectRequest) (models.AssignedProjectLog, error) {
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return models.AssignedProjectLog{}, fmt.Errorf("deadline must be RFC 3339: %w", ErrInvalid)
	}

	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return models.AssignedProjectLog{}, fmt.Errorf("project %s: %w", req.ProjectID, ErrNotFound)
	}

	if project.CreatedBy != userID {
		return models.AssignedProjectLog{}, fmt.Errorf("only the owning project manager can assign a project: %w", ErrForbidden)
	}

	if _, err := s.teamRepo.FindByID(req.TeamID); err != nil {
		return models.AssignedProjectLog{}, fmt.Errorf("team %s: %w", req.TeamID, ErrNotFound)
	}

	exists, err := s.logRepo.ExistsByProjectAndTeam(req.ProjectID, req.TeamID)
	if err != nil {
		return models.AssignedProjectLog{}, err
	}
	if exists {
		return models.AssignedProjectLog{}, fmt.Errorf("project %s is already assigned to team %s: %w", req.ProjectID, req.TeamID, ErrConflict)
	}

	logEntry := models.AssignedProjectLog{
		ProjectID:  req.ProjectID,
		TeamID:     req.TeamID,
		AssignedBy: userID,
		Deadline:   deadline,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "AssignProject")
		if err != nil {
			return err
		}
		logEntry.AssignProjectID = id
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		return models.AssignedProjectLog{}, err
	}

	return logEntry, nil
}

// ListAssignments returns logs filtered by project and/or team, scoped by
// role: admins see everything, project managers their own projects' logs,
// everyone else the logs of teams they lead or belong to.
func (s *AssignmentService) ListAssignments(userID string, userType models.UserType, projectID, teamID string) ([]models.AssignedProjectLog, error) {
	var logs []models.AssignedProjectLog
	var err error

	switch {
	case projectID != "":
		logs, err = s.logRepo.FindByProject(projectID)
	case teamID != "":
		logs, err = s.logRepo.FindByTeam(teamID)
	default:
		logs, err = s.logRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}

	if userType == models.UserTypeAdmin {
		return logs, nil
	}

	if userType == models.UserTypeProjectManager {
		scoped := make([]models.AssignedProjectLog, 0, len(logs))
		for _, l := range logs {
			if l.AssignedBy == userID {
				scoped = append(scoped, l)
				continue
			}
			if project, err := s.projectRepo.FindByID(l.ProjectID); err == nil && project.CreatedBy == userID {
				scoped = append(scoped, l)
			}
		}
		return scoped, nil
	}

	// Leader/member: keep logs of teams the user is on
	teams, err := s.teamRepo.FindByMember(userID)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]bool, len(teams))
	for _, t := range teams {
		mine[t.TeamID] = true
	}
	scoped := make([]models.AssignedProjectLog, 0, len(logs))
	for _, l := range logs {
		if mine[l.TeamID] {
			scoped = append(scoped, l)
		}
	}
	return scoped, nil
}

// UnassignProject removes the (project, team) log and everything created
// under it: subtasks -> tasks -> log, in one transaction. The team and the
// project survive. A pair with no log yields zero counts, not an error.
func (s *AssignmentService) UnassignProject(userID string, isAdmin bool, req dto.UnassignProjectRequest) (dto.CascadeDeleteResult, error) {
	var counts dto.CascadeDeleteResult

	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return counts, fmt.Errorf("project %s: %w", req.ProjectID, ErrNotFound)
	}

	if !isAdmin && project.CreatedBy != userID {
		return counts, fmt.Errorf("only the owning project manager can unassign a project: %w", ErrForbidden)
	}

	logEntry, err := s.logRepo.FindByProjectAndTeam(req.ProjectID, req.TeamID)
	if err != nil {
		// Nothing assigned: every stage reports 0 deleted
		return counts, nil
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		taskIDs := utils.Dedupe(logEntry.TasksIDs)

		if len(taskIDs) > 0 {
			res := tx.Where("parent_task_id IN ?", taskIDs).Delete(&models.Subtask{})
			if res.Error != nil {
				return res.Error
			}
			counts.Subtasks = res.RowsAffected

			res = tx.Where("task_id IN ?", taskIDs).Delete(&models.Task{})
			if res.Error != nil {
				return res.Error
			}
			counts.Tasks = res.RowsAffected
		}

		res := tx.Where("assign_project_id = ?", logEntry.AssignProjectID).Delete(&models.AssignedProjectLog{})
		if res.Error != nil {
			return res.Error
		}
		counts.Logs = res.RowsAffected

		return nil
	})
	if err != nil {
		return dto.CascadeDeleteResult{}, err
	}

	return counts, nil
}
