package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/srimandev/taskmate/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// respondServiceError maps service sentinels onto the wire statuses. Raw
// store errors collapse into a generic 500 using the supplied message.
func respondServiceError(c *fiber.Ctx, err error, internalMessage string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrTaskNotFound):
		return apiError(c, fiber.StatusNotFound, "task not found")
	case errors.Is(err, services.ErrTaskInvalid):
		return apiError(c, fiber.StatusBadRequest, "missing required task fields")
	case errors.Is(err, services.ErrNoFriend):
		return apiError(c, fiber.StatusForbidden, "no friend")
	case errors.Is(err, services.ErrNoFriendTasks):
		return apiError(c, fiber.StatusForbidden, "no tasks found")
	case errors.Is(err, services.ErrSelfRequest):
		return apiError(c, fiber.StatusBadRequest, "cannot send request to yourself")
	case errors.Is(err, services.ErrAlreadyFriends):
		return apiError(c, fiber.StatusBadRequest, "already friends")
	case errors.Is(err, services.ErrRequestAlreadySent):
		return apiError(c, fiber.StatusBadRequest, "request already sent")
	case errors.Is(err, services.ErrRecipientUnavailable):
		return apiError(c, fiber.StatusBadRequest, "user already has a friend")
	case errors.Is(err, services.ErrFriendSlotTaken):
		return apiError(c, fiber.StatusBadRequest, "one of the users already has a friend")
	default:
		return apiError(c, fiber.StatusInternalServerError, internalMessage)
	}
}
