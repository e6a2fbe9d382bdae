package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByID retrieves a task by its TaskID
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "task_id = ?", id)
	return task, result.Error
}

// FindByIDs retrieves all tasks whose TaskID is in the given set
func (r *TaskRepository) FindByIDs(ids []string) ([]models.Task, error) {
	var tasks []models.Task
	if len(ids) == 0 {
		return tasks, nil
	}
	result := database.DB.Where("task_id IN ?", ids).Find(&tasks)
	return tasks, result.Error
}

// FindAssignedTo retrieves all tasks the given user is an assignee of.
// AssignedTo is a JSON id list, so the filter happens application-side.
func (r *TaskRepository) FindAssignedTo(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := database.DB.Find(&tasks).Error; err != nil {
		return nil, err
	}
	var matched []models.Task
	for _, t := range tasks {
		if t.IsAssignedTo(userID) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Update persists changes to an existing task
func (r *TaskRepository) Update(task models.Task) error {
	return database.DB.Save(&task).Error
}
