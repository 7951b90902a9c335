package api

import "github.com/gofiber/fiber/v2"

// GetPartnerTasks exposes the friend's full task list to the caller. The
// partner view is unrestricted read access; there is no per-task filtering.
func (handler *Handler) GetPartnerTasks(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := handler.taskService.ListFriendTasks(userID)
	if err != nil {
		return respondServiceError(c, err, "failed to fetch partner tasks")
	}
	return c.JSON(tasks)
}

// DeletePartnerTask removes a task from the friend's list, not the caller's.
func (handler *Handler) DeletePartnerTask(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.taskService.DeleteFriendTask(userID, c.Params("id")); err != nil {
		return respondServiceError(c, err, "failed to delete partner task")
	}
	return apiMessage(c, "task deleted successfully")
}
