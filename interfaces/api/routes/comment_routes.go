package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupCommentRoutes(api fiber.Router, h *handlers.Handlers) {
	comments := api.Group("/comments")
	comments.Post("/", h.CommentHandler.CreateComment)
	comments.Get("/", h.CommentHandler.ListComments)
	comments.Get("/:id", h.CommentHandler.GetComment)
	comments.Put("/:id", h.CommentHandler.UpdateComment)
	comments.Delete("/:id", h.CommentHandler.DeleteComment)
}
