package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateDeviceToken overwrites the caller's stored push token unconditionally.
func (handler *Handler) UpdateDeviceToken(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deviceTokenInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if _, err := handler.repositories.Users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update token")
	}

	if err := handler.repositories.Users.UpdateDeviceToken(userID, strings.TrimSpace(input.Token)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update token")
	}
	return apiMessage(c, "token updated")
}

// NotifyUser pushes to the stored device token of user :id. Delivery is
// detached and best effort; the response only reflects whether a target
// token exists.
func (handler *Handler) NotifyUser(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	targetID, err := pathUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	input := notifyInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	target, err := handler.repositories.Users.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to send notification")
	}
	if target.DeviceToken == "" {
		return apiError(c, fiber.StatusNotFound, "no device token")
	}

	handler.push.Dispatch(target.DeviceToken, input.Title, input.Body)
	return apiMessage(c, "notification sent")
}

// SendNotification relays directly to a raw device token without auth.
// Always best effort: the gateway outcome never changes the response.
func (handler *Handler) SendNotification(c *fiber.Ctx) error {
	input := sendNotificationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.FriendToken) == "" {
		return apiError(c, fiber.StatusBadRequest, "missing friend token")
	}

	handler.push.Dispatch(input.FriendToken, input.Title, input.Body)
	return apiMessage(c, "notification sent")
}
