package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/srimandev/taskmate/internal/services"
)

const (
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	username, email, password, err := services.NormalizeRegistrationInput(input.Username, input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if _, err := handler.authService.Register(username, email, password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return apiError(c, fiber.StatusBadRequest, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user registered successfully"})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid credentials")
	}

	user, err := handler.authService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
			return apiError(c, fiber.StatusBadRequest, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	token, err := handler.buildAuthToken(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{
		"token":  token,
		"userId": user.ID,
	})
}
