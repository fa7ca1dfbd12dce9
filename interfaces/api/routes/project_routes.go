package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupProjectRoutes(api fiber.Router, h *handlers.Handlers) {
	projects := api.Group("/projects")
	projects.Post("/", h.ProjectHandler.CreateProject)
	projects.Get("/", h.ProjectHandler.ListProjects)
	projects.Get("/:id", h.ProjectHandler.GetProject)
	projects.Put("/:id", h.ProjectHandler.UpdateProject)
	projects.Delete("/:id", h.ProjectHandler.DeleteProject)
}
