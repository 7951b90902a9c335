package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/srimandev/taskmate/internal/models"
	"github.com/srimandev/taskmate/internal/services"
)

func (handler *Handler) UsersWithoutFriends(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summaries, err := handler.friendshipService.ListUsersWithoutFriend(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch users")
	}
	return c.JSON(summaries)
}

func (handler *Handler) UsersInRequest(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summaries, err := handler.friendshipService.ListIncomingRequests(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch requests")
	}
	return c.JSON(summaries)
}

// GetFriend responds with the single current friend, projected and wrapped
// in a list to match the other friendship listings.
func (handler *Handler) GetFriend(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	friend, err := handler.friendshipService.CurrentFriend(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoFriend) {
			return apiError(c, fiber.StatusBadRequest, "no friend")
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch friend")
	}
	return c.JSON([]models.UserSummary{friend.Summary()})
}

func (handler *Handler) SendRequest(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	recipientID, err := pathUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.friendshipService.SendRequest(userID, recipientID); err != nil {
		return respondServiceError(c, err, "failed to send request")
	}
	return apiMessage(c, "friend request sent")
}

func (handler *Handler) AcceptRequest(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	senderID, err := pathUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.friendshipService.AcceptRequest(userID, senderID); err != nil {
		return respondServiceError(c, err, "failed to accept request")
	}
	return apiMessage(c, "friend request accepted")
}

func (handler *Handler) DeclineRequest(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	senderID, err := pathUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.friendshipService.DeclineRequest(userID, senderID); err != nil {
		return respondServiceError(c, err, "failed to decline request")
	}
	return apiMessage(c, "friend request declined")
}

func (handler *Handler) RemoveFriend(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.friendshipService.RemoveFriend(userID); err != nil {
		if errors.Is(err, services.ErrNoFriend) {
			return apiError(c, fiber.StatusForbidden, "no friend")
		}
		return respondServiceError(c, err, "failed to remove friend")
	}
	return apiMessage(c, "friend removed")
}

func (handler *Handler) HaveFriend(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	state, err := handler.friendshipService.HasFriend(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check friend state")
	}
	return c.JSON(fiber.Map{"state": state})
}

func pathUserID(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
