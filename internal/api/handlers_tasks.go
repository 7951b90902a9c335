package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/srimandev/taskmate/internal/services"
)

func (handler *Handler) GetTasks(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := handler.taskService.ListOwnTasks(userID)
	if err != nil {
		return respondServiceError(c, err, "failed to fetch tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.TaskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.CreateTask(userID, input)
	if err != nil {
		return respondServiceError(c, err, "failed to add task")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.TaskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.UpdateTask(userID, c.Params("id"), input)
	if err != nil {
		return respondServiceError(c, err, "failed to update task")
	}
	return c.JSON(fiber.Map{"task": task})
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.taskService.DeleteTask(userID, c.Params("id")); err != nil {
		return respondServiceError(c, err, "failed to delete task")
	}
	return apiMessage(c, "task deleted successfully")
}
