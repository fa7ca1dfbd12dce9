package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupTeamRoutes(api fiber.Router, h *handlers.Handlers) {
	teams := api.Group("/teams")
	teams.Post("/", h.TeamHandler.CreateTeam)
	teams.Get("/", h.TeamHandler.ListTeams)
	teams.Get("/:id", h.TeamHandler.GetTeam)
	teams.Put("/:id", h.TeamHandler.UpdateTeam)
	teams.Delete("/:id", h.TeamHandler.DeleteTeam)

	teams.Get("/:id/projects", h.TeamHandler.ListTeamProjects)
	teams.Get("/:id/members", h.TeamHandler.ListMembers)
	teams.Post("/:id/members/:userId", h.TeamHandler.AddMember)
	teams.Delete("/:id/members/:userId", h.TeamHandler.RemoveMember)
}
