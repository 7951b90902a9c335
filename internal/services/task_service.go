package services

import (
	"errors"
	"time"

	"github.com/srimandev/taskmate/internal/models"
	"gorm.io/gorm"
)

type TaskUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type TaskStore interface {
	ListByUser(userID uint) ([]models.Task, error)
	FindByUserAndTaskID(userID uint, taskID string) (models.Task, error)
	Create(task *models.Task) error
	Save(task *models.Task) error
	DeleteByUserAndTaskID(userID uint, taskID string) (bool, error)
}

type TaskService struct {
	users TaskUserRepository
	tasks TaskStore
}

func NewTaskService(users TaskUserRepository, tasks TaskStore) *TaskService {
	return &TaskService{users: users, tasks: tasks}
}

// ListOwnTasks returns the caller's full task list in creation order.
func (service *TaskService) ListOwnTasks(userID uint) ([]models.Task, error) {
	if _, err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.tasks.ListByUser(userID)
}

// CreateTask appends a task with a freshly derived id to the end of the
// caller's list and returns it.
func (service *TaskService) CreateTask(userID uint, input TaskInput) (models.Task, error) {
	if _, err := service.requireUser(userID); err != nil {
		return models.Task{}, err
	}
	if err := ValidateNewTask(input); err != nil {
		return models.Task{}, err
	}

	now := time.Now()
	task := models.Task{
		UserID:      userID,
		TaskID:      DeriveTaskID(now, input.Title),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Duration:    input.Duration,
		Completed:   input.Completed,
		MonthIndex:  input.MonthIndex,
		Week:        input.Week,
		Images:      input.Images,
		Status:      input.Status,
	}
	if task.Images == nil {
		task.Images = []string{}
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update to the caller's own task. Empty and
// zero values leave the stored fields untouched.
func (service *TaskService) UpdateTask(userID uint, taskID string, input TaskInput) (models.Task, error) {
	if _, err := service.requireUser(userID); err != nil {
		return models.Task{}, err
	}

	task, err := service.tasks.FindByUserAndTaskID(userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	ApplyTaskUpdate(&task, input)
	if err := service.tasks.Save(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) DeleteTask(userID uint, taskID string) error {
	if _, err := service.requireUser(userID); err != nil {
		return err
	}

	deleted, err := service.tasks.DeleteByUserAndTaskID(userID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

// ListFriendTasks exposes the partner view: the friend's entire task list,
// unfiltered. An empty friend list reads as "no tasks" rather than an empty
// page, matching the partner view contract.
func (service *TaskService) ListFriendTasks(userID uint) ([]models.Task, error) {
	friend, err := service.requireFriend(userID)
	if err != nil {
		return nil, err
	}

	tasks, err := service.tasks.ListByUser(friend.ID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoFriendTasks
	}
	return tasks, nil
}

// DeleteFriendTask removes a task from the friend's list, not the caller's.
func (service *TaskService) DeleteFriendTask(userID uint, taskID string) error {
	friend, err := service.requireFriend(userID)
	if err != nil {
		return err
	}

	deleted, err := service.tasks.DeleteByUserAndTaskID(friend.ID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func (service *TaskService) requireUser(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *TaskService) requireFriend(userID uint) (models.User, error) {
	user, err := service.requireUser(userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.HasFriend() {
		return models.User{}, ErrNoFriend
	}

	friend, err := service.users.FindByID(*user.FriendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return friend, nil
}
