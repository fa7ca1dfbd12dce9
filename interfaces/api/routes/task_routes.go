package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
