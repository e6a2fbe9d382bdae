package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ProjectID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "project_id = ?", id)
	return project, result.Error
}

// FindByCreator retrieves all projects created by a project manager
func (r *ProjectRepository) FindByCreator(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("created_by = ?", userID).Find(&projects)
	return projects, result.Error
}

// Update persists changes to an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	return database.DB.Save(&project).Error
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	userID string,
	isAdmin bool,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	// Non-admins only see their own projects
	if !isAdmin && userID != "" {
		db = db.Where("created_by = ?", userID)
	}

	// Search functionality
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", searchPattern, searchPattern)
	}

	// Count total records (with the same filter)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Calculate offset for pagination
	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
