package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// TeamRepository handles database operations for teams
type TeamRepository struct{}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

// FindAll retrieves all teams
func (r *TeamRepository) FindAll() ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Find(&teams)
	return teams, result.Error
}

// FindByID retrieves a team by its TeamID
func (r *TeamRepository) FindByID(id string) (models.Team, error) {
	var team models.Team
	result := database.DB.First(&team, "team_id = ?", id)
	return team, result.Error
}

// FindByCreator retrieves all teams created by the given project manager
func (r *TeamRepository) FindByCreator(userID string) ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Where("created_by = ?", userID).Find(&teams)
	return teams, result.Error
}

// FindByLeader retrieves all teams led by the given user
func (r *TeamRepository) FindByLeader(userID string) ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Where("team_leader = ?", userID).Find(&teams)
	return teams, result.Error
}

// FindByMember retrieves all teams the given user belongs to. Membership is
// a JSON id list, so the filter happens application-side.
func (r *TeamRepository) FindByMember(userID string) ([]models.Team, error) {
	teams, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	var matched []models.Team
	for _, t := range teams {
		if t.HasMember(userID) || t.TeamLeader == userID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Update persists changes to an existing team
func (r *TeamRepository) Update(team models.Team) error {
	return database.DB.Save(&team).Error
}
