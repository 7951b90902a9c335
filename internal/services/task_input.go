package services

import (
	"errors"
	"time"

	"github.com/srimandev/taskmate/internal/models"
)

const taskDateLayout = "2006-01-02"

var ErrTaskInvalid = errors.New("invalid task input")

// TaskInput carries the wire fields of a task create or update request.
type TaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Duration    int      `json:"dur"`
	Completed   int      `json:"comp"`
	MonthIndex  int      `json:"mon"`
	Week        []string `json:"week"`
	Images      []string `json:"img"`
	Status      string   `json:"status"`
}

// ValidateNewTask enforces the storage-level required fields: title, date,
// status and a non-empty week list. The numeric fields accept zero.
func ValidateNewTask(input TaskInput) error {
	if input.Title == "" || input.Status == "" || len(input.Week) == 0 {
		return ErrTaskInvalid
	}
	if _, err := time.Parse(taskDateLayout, input.Date); err != nil {
		return ErrTaskInvalid
	}
	return nil
}

// ApplyTaskUpdate overwrites a field only when the incoming value is
// non-empty (strings, lists) or non-zero (numbers). An empty string or zero
// therefore never clears a stored value; callers cannot blank a field
// through this path.
func ApplyTaskUpdate(task *models.Task, input TaskInput) {
	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Description != "" {
		task.Description = input.Description
	}
	if input.Date != "" {
		task.Date = input.Date
	}
	if input.Duration != 0 {
		task.Duration = input.Duration
	}
	if input.Completed != 0 {
		task.Completed = input.Completed
	}
	if input.MonthIndex != 0 {
		task.MonthIndex = input.MonthIndex
	}
	if len(input.Week) != 0 {
		task.Week = input.Week
	}
	if len(input.Images) != 0 {
		task.Images = input.Images
	}
	if input.Status != "" {
		task.Status = input.Status
	}
}
