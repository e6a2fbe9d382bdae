package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// AssignedProjectLogRepository handles database operations for
// project-to-team assignment logs
type AssignedProjectLogRepository struct{}

// NewAssignedProjectLogRepository creates a new assignment log repository instance
func NewAssignedProjectLogRepository() *AssignedProjectLogRepository {
	return &AssignedProjectLogRepository{}
}

// FindAll retrieves all assignment logs
func (r *AssignedProjectLogRepository) FindAll() ([]models.AssignedProjectLog, error) {
	var logs []models.AssignedProjectLog
	result := database.DB.Find(&logs)
	return logs, result.Error
}

// FindByID retrieves an assignment log by its AssignProjectID
func (r *AssignedProjectLogRepository) FindByID(id string) (models.AssignedProjectLog, error) {
	var log models.AssignedProjectLog
	result := database.DB.First(&log, "assign_project_id = ?", id)
	return log, result.Error
}

// FindByProjectAndTeam retrieves the single log for a (project, team) pair
func (r *AssignedProjectLogRepository) FindByProjectAndTeam(projectID, teamID string) (models.AssignedProjectLog, error) {
	var log models.AssignedProjectLog
	result := database.DB.Where("project_id = ? AND team_id = ?", projectID, teamID).First(&log)
	return log, result.Error
}

// FindByProject retrieves all logs for a project
func (r *AssignedProjectLogRepository) FindByProject(projectID string) ([]models.AssignedProjectLog, error) {
	var logs []models.AssignedProjectLog
	result := database.DB.Where("project_id = ?", projectID).Find(&logs)
	return logs, result.Error
}

// FindByTeam retrieves all logs for a team
func (r *AssignedProjectLogRepository) FindByTeam(teamID string) ([]models.AssignedProjectLog, error) {
	var logs []models.AssignedProjectLog
	result := database.DB.Where("team_id = ?", teamID).Find(&logs)
	return logs, result.Error
}

// FindByTeams retrieves all logs for any of the given teams
func (r *AssignedProjectLogRepository) FindByTeams(teamIDs []string) ([]models.AssignedProjectLog, error) {
	var logs []models.AssignedProjectLog
	if len(teamIDs) == 0 {
		return logs, nil
	}
	result := database.DB.Where("team_id IN ?", teamIDs).Find(&logs)
	return logs, result.Error
}

// ExistsByProjectAndTeam checks whether a (project, team) pair is already assigned
func (r *AssignedProjectLogRepository) ExistsByProjectAndTeam(projectID, teamID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.AssignedProjectLog{}).
		Where("project_id = ? AND team_id = ?", projectID, teamID).
		Count(&count).Error
	return count > 0, err
}

// FindByTask retrieves the log whose TasksIDs list contains the given task.
// TasksIDs is a JSON id list, so the filter happens application-side.
func (r *AssignedProjectLogRepository) FindByTask(taskID string) (models.AssignedProjectLog, bool, error) {
	logs, err := r.FindAll()
	if err != nil {
		return models.AssignedProjectLog{}, false, err
	}
	for _, log := range logs {
		for _, id := range log.TasksIDs {
			if id == taskID {
				return log, true, nil
			}
		}
	}
	return models.AssignedProjectLog{}, false, nil
}

// Update persists changes to an existing assignment log
func (r *AssignedProjectLogRepository) Update(log models.AssignedProjectLog) error {
	return database.DB.Save(&log).Error
}
