package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	comment, err := h.commentService.CreateComment(ctx, &req)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.CommentToCommentResponse(comment))
}

func (h *CommentHandler) GetComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment ID")
	}

	comment, err := h.commentService.GetComment(ctx, id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.CommentToCommentResponse(comment))
}

func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment ID")
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	comment, err := h.commentService.UpdateComment(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Comment update failed", "comment_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.CommentToCommentResponse(comment))
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid comment ID")
	}

	if err := h.commentService.DeleteComment(ctx, id); err != nil {
		logger.WarnContext(ctx, "Comment deletion failed", "comment_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CommentFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	query := repositories.CommentQuery{
		Sort: req.Sort,
		Page: repositories.Page{Skip: req.Skip, Limit: req.Limit}.Normalize(),
	}
	if req.TaskID > 0 {
		taskID := req.TaskID
		query.TaskID = &taskID
	}

	comments, total, err := h.commentService.ListComments(ctx, query)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = *dto.CommentToCommentResponse(comment)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, query.Skip, query.Limit)
}
