package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	user, err := h.userService.CreateUser(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "User creation failed", "username", req.Username, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(ctx, id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	user, err := h.userService.UpdateUser(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "User update failed", "user_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		logger.WarnContext(ctx, "User deletion failed", "user_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UserFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	query := repositories.UserQuery{
		Sort: req.Sort,
		Page: repositories.Page{Skip: req.Skip, Limit: req.Limit}.Normalize(),
	}

	users, total, err := h.userService.ListUsers(ctx, query)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *dto.UserToUserResponse(user)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, query.Skip, query.Limit)
}
