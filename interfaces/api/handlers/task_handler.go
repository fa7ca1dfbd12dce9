package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateTask(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TaskFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	query := repositories.TaskQuery{
		DeadlineBefore: req.DeadlineBefore,
		Sort:           req.Sort,
		Page:           repositories.Page{Skip: req.Skip, Limit: req.Limit}.Normalize(),
	}
	if req.ProjectID > 0 {
		projectID := req.ProjectID
		query.ProjectID = &projectID
	}
	if req.Status != "" {
		status := models.TaskStatus(req.Status)
		query.Status = &status
	}
	if req.Priority != "" {
		priority := models.TaskPriority(req.Priority)
		query.Priority = &priority
	}

	tasks, total, err := h.taskService.ListTasks(ctx, query)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *dto.TaskToTaskResponse(task)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, query.Skip, query.Limit)
}
