package api

import (
	"time"

	"github.com/srimandev/taskmate/internal/db"
	"github.com/srimandev/taskmate/internal/services"
	"gorm.io/gorm"
)

const defaultAuthTokenTTL = time.Hour

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	tokenTTL     time.Duration
	repositories *db.Repositories

	authService       *services.AuthService
	taskService       *services.TaskService
	friendshipService *services.FriendshipService
	push              *services.PushClient

	loginLimiter *attemptLimiter
}

// NewHandler wires the repositories and services over the shared database
// handle. pushGatewayURL may be empty to use the default gateway.
func NewHandler(database *gorm.DB, secretKey string, pushGatewayURL string) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		tokenTTL:     defaultAuthTokenTTL,
		loginLimiter: newAttemptLimiter(),
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.taskService = services.NewTaskService(handler.repositories.Users, handler.repositories.Tasks)
	handler.friendshipService = services.NewFriendshipService(handler.repositories.Users)
	handler.push = services.NewPushClient(pushGatewayURL)
	return handler
}
