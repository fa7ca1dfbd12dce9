package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/pkg/utils"
)

// Services contains all the services needed for handlers.
type Services struct {
	UserService    services.UserService
	TeamService    services.TeamService
	ProjectService services.ProjectService
	TaskService    services.TaskService
	CommentService services.CommentService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	UserHandler    *UserHandler
	TeamHandler    *TeamHandler
	ProjectHandler *ProjectHandler
	TaskHandler    *TaskHandler
	CommentHandler *CommentHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler:    NewUserHandler(services.UserService),
		TeamHandler:    NewTeamHandler(services.TeamService),
		ProjectHandler: NewProjectHandler(services.ProjectService),
		TaskHandler:    NewTaskHandler(services.TaskService),
		CommentHandler: NewCommentHandler(services.CommentService),
	}
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// domainErrorResponse maps the error taxonomy onto HTTP statuses:
// not-found -> 404, uniqueness and blocked deletes -> 409,
// not-a-member -> 400, anything else -> 500.
func domainErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrTeamNotFound),
		errors.Is(err, models.ErrProjectNotFound),
		errors.Is(err, models.ErrTaskNotFound),
		errors.Is(err, models.ErrCommentNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrAlreadyMember),
		errors.Is(err, models.ErrHasChildren):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrNotMember):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
