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

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	logRepo     *repositories.AssignedProjectLogRepository
	teamRepo    *repositories.TeamRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		logRepo:     repositories.NewAssignedProjectLogRepository(),
		teamRepo:    repositories.NewTeamRepository(),
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting.
// Admin can see all projects, project managers only their own.
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"status":     true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.UserID,
		filter.IsAdmin,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// CreateProject creates a new pending project owned by the given manager
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		Status:      models.ProjectPending,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "Project")
		if err != nil {
			return err
		}
		project.ProjectID = id
		return tx.Create(&project).Error
	})
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// GetProjectDetail retrieves a project with its team assignments joined in.
// Visible to the admin, the owning manager, and anyone on an assigned team.
func (s *ProjectService) GetProjectDetail(projectID, userID string, isAdmin bool) (dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.ProjectDetailResponse{}, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}

	logs, err := s.logRepo.FindByProject(projectID)
	if err != nil {
		return dto.ProjectDetailResponse{}, err
	}

	// Join team names manually by id string
	assignments := make([]dto.ProjectAssignmentItem, 0, len(logs))
	onAssignedTeam := false
	for _, l := range logs {
		item := dto.ProjectAssignmentItem{
			AssignProjectID: l.AssignProjectID,
			TeamID:          l.TeamID,
			Deadline:        l.Deadline.Format(time.RFC3339),
			TasksIDs:        l.TasksIDs,
		}
		team, err := s.teamRepo.FindByID(l.TeamID)
		if err == nil {
			item.TeamName = team.TeamName
			if team.TeamLeader == userID || team.HasMember(userID) {
				onAssignedTeam = true
			}
		}
		assignments = append(assignments, item)
	}

	if !isAdmin && project.CreatedBy != userID && !onAssignedTeam {
		return dto.ProjectDetailResponse{}, fmt.Errorf("no access to project %s: %w", projectID, ErrForbidden)
	}

	return dto.ProjectDetailResponse{Project: project, Assignments: assignments}, nil
}

// UpdateProject changes title and description. Owner only.
func (s *ProjectService) UpdateProject(projectID, userID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}

	if project.CreatedBy != userID {
		return models.Project{}, fmt.Errorf("only the owning project manager can update a project: %w", ErrForbidden)
	}

	project.Title = req.Title
	project.Description = req.Description
	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// CompleteProject marks a project as completed. Only valid from "In Progress".
func (s *ProjectService) CompleteProject(projectID, userID string, isAdmin bool) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}

	if !isAdmin && project.CreatedBy != userID {
		return models.Project{}, fmt.Errorf("only the owning project manager can complete a project: %w", ErrForbidden)
	}

	if project.Status != models.ProjectInProgress {
		return models.Project{}, fmt.Errorf("cannot complete a project in status %q: %w", project.Status, ErrInvalid)
	}

	project.Status = models.ProjectCompleted
	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject removes a project and everything created under its
// assignments: subtasks, tasks and logs, leaves-first in one transaction.
// Teams survive; they belong to the manager, not the project.
func (s *ProjectService) DeleteProject(projectID, userID string, isAdmin bool) (dto.CascadeDeleteResult, error) {
	var counts dto.CascadeDeleteResult

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return counts, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}

	if !isAdmin && project.CreatedBy != userID {
		return counts, fmt.Errorf("only the owning project manager can delete a project: %w", ErrForbidden)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var logs []models.AssignedProjectLog
		if err := tx.Where("project_id = ?", projectID).Find(&logs).Error; err != nil {
			return err
		}
		var taskIDs []string
		for _, l := range logs {
			taskIDs = append(taskIDs, l.TasksIDs...)
		}
		taskIDs = utils.Dedupe(taskIDs)

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

		res := tx.Where("project_id = ?", projectID).Delete(&models.AssignedProjectLog{})
		if res.Error != nil {
			return res.Error
		}
		counts.Logs = res.RowsAffected

		res = tx.Where("project_id = ?", projectID).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		counts.Projects = res.RowsAffected

		return nil
	})
	if err != nil {
		return dto.CascadeDeleteResult{}, err
	}

	return counts, nil
}
