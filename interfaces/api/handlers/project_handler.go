package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	project, err := h.projectService.CreateProject(ctx, &req)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.ProjectToProjectResponse(project))
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	project, err := h.projectService.GetProject(ctx, id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.ProjectToProjectResponse(project))
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	project, err := h.projectService.UpdateProject(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Project update failed", "project_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.ProjectToProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	if err := h.projectService.DeleteProject(ctx, id); err != nil {
		logger.WarnContext(ctx, "Project deletion failed", "project_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ProjectFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	query := repositories.ProjectQuery{
		Sort: req.Sort,
		Page: repositories.Page{Skip: req.Skip, Limit: req.Limit}.Normalize(),
	}
	if req.TeamID > 0 {
		teamID := req.TeamID
		query.TeamID = &teamID
	}

	projects, total, err := h.projectService.ListProjects(ctx, query)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *dto.ProjectToProjectResponse(project)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, query.Skip, query.Limit)
}
