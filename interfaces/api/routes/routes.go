package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupUserRoutes(api, h)
	SetupTeamRoutes(api, h)
	SetupProjectRoutes(api, h)
	SetupTaskRoutes(api, h)
	SetupCommentRoutes(api, h)
}
