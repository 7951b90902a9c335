package db

import (
	"github.com/srimandev/taskmate/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

// ListByUser returns the user's tasks in insertion order, which matches
// creation order because the surrogate key is monotonic.
func (repo *TaskRepository) ListByUser(userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByUserAndTaskID(userID uint, taskID string) (models.Task, error) {
	var task models.Task
	if err := repo.database.
		Where("user_id = ? AND task_id = ?", userID, taskID).
		First(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Save(task).Error
}

// DeleteByUserAndTaskID removes the matching task and reports whether a row
// was actually deleted.
func (repo *TaskRepository) DeleteByUserAndTaskID(userID uint, taskID string) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Delete(&models.Task{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
