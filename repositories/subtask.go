package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// SubtaskRepository handles database operations for subtasks
type SubtaskRepository struct{}

// NewSubtaskRepository creates a new subtask repository instance
func NewSubtaskRepository() *SubtaskRepository {
	return &SubtaskRepository{}
}

// FindByID retrieves a subtask by its SubtaskID
func (r *SubtaskRepository) FindByID(id string) (models.Subtask, error) {
	var subtask models.Subtask
	result := database.DB.First(&subtask, "subtask_id = ?", id)
	return subtask, result.Error
}

// FindByParent retrieves all subtasks under a task
func (r *SubtaskRepository) FindByParent(taskID string) ([]models.Subtask, error) {
	var subtasks []models.Subtask
	result := database.DB.Where("parent_task_id = ?", taskID).Find(&subtasks)
	return subtasks, result.Error
}

// CountByParents counts subtasks under any of the given tasks
func (r *SubtaskRepository) CountByParents(taskIDs []string) (int64, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := database.DB.Model(&models.Subtask{}).Where("parent_task_id IN ?", taskIDs).Count(&count).Error
	return count, err
}

// FindAssignedTo retrieves all subtasks the given user is an assignee of.
// AssignedTo is a JSON id list, so the filter happens application-side.
func (r *SubtaskRepository) FindAssignedTo(userID string) ([]models.Subtask, error) {
	var subtasks []models.Subtask
	if err := database.DB.Find(&subtasks).Error; err != nil {
		return nil, err
	}
	var matched []models.Subtask
	for _, s := range subtasks {
		if s.IsAssignedTo(userID) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// Update persists changes to an existing subtask
func (r *SubtaskRepository) Update(subtask models.Subtask) error {
	return database.DB.Save(&subtask).Error
}
