package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")
	users.Post("/", h.UserHandler.CreateUser)
	users.Get("/", h.UserHandler.ListUsers)
	users.Get("/:id", h.UserHandler.GetUser)
	users.Put("/:id", h.UserHandler.UpdateUser)
	users.Delete("/:id", h.UserHandler.DeleteUser)
}
