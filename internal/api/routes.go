package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)

	// Push relay for a partner's raw device token; deliberately unauthenticated.
	app.Post("/send-notification", handler.SendNotification)

	app.Get("/tasks", handler.AuthRequired, handler.GetTasks)
	app.Post("/task", handler.AuthRequired, handler.CreateTask)
	app.Put("/task/:id", handler.AuthRequired, handler.UpdateTask)
	app.Delete("/task/:id", handler.AuthRequired, handler.DeleteTask)

	app.Get("/partner-task", handler.AuthRequired, handler.GetPartnerTasks)
	app.Delete("/partner-task/:id", handler.AuthRequired, handler.DeletePartnerTask)

	app.Get("/users-without-friends", handler.AuthRequired, handler.UsersWithoutFriends)
	app.Get("/users-in-request", handler.AuthRequired, handler.UsersInRequest)
	app.Get("/get-friend", handler.AuthRequired, handler.GetFriend)
	app.Post("/send-request/:id", handler.AuthRequired, handler.SendRequest)
	app.Post("/accept-request/:id", handler.AuthRequired, handler.AcceptRequest)
	app.Post("/decline-request/:id", handler.AuthRequired, handler.DeclineRequest)
	app.Post("/remove-friend", handler.AuthRequired, handler.RemoveFriend)
	app.Post("/have-friend", handler.AuthRequired, handler.HaveFriend)

	app.Post("/token", handler.AuthRequired, handler.UpdateDeviceToken)
	app.Post("/notify/:id", handler.AuthRequired, handler.NotifyUser)
}
