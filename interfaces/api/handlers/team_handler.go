package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/domain/dto"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	team, err := h.teamService.CreateTeam(ctx, &req)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TeamToTeamResponse(team))
}

func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}

	team, err := h.teamService.GetTeam(ctx, id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TeamToTeamResponse(team))
}

func (h *TeamHandler) UpdateTeam(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	team, err := h.teamService.UpdateTeam(ctx, id, &req)
	if err != nil {
		logger.WarnContext(ctx, "Team update failed", "team_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TeamToTeamResponse(team))
}

func (h *TeamHandler) DeleteTeam(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}

	if err := h.teamService.DeleteTeam(ctx, id); err != nil {
		logger.WarnContext(ctx, "Team deletion failed", "team_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TeamHandler) ListTeams(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TeamFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	query := repositories.TeamQuery{
		Sort: req.Sort,
		Page: repositories.Page{Skip: req.Skip, Limit: req.Limit}.Normalize(),
	}

	teams, total, err := h.teamService.ListTeams(ctx, query)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *dto.TeamToTeamResponse(team)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, query.Skip, query.Limit)
}

func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	ctx := c.UserContext()

	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.teamService.AddMember(ctx, teamID, userID); err != nil {
		logger.WarnContext(ctx, "Add member failed", "team_id", teamID, "user_id", userID, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, fiber.Map{"teamId": teamID, "userId": userID})
}

func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	ctx := c.UserContext()

	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.teamService.RemoveMember(ctx, teamID, userID); err != nil {
		logger.WarnContext(ctx, "Remove member failed", "team_id", teamID, "user_id", userID, "error", err)
		return domainErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}

	members, err := h.teamService.ListMembers(ctx, teamID)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	responses := make([]dto.UserResponse, len(members))
	for i, member := range members {
		responses[i] = *dto.UserToUserResponse(member)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *TeamHandler) ListTeamProjects(c *fiber.Ctx) error {
	ctx := c.UserContext()

	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team ID")
	}

	projects, err := h.teamService.ListTeamProjects(ctx, teamID)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	responses := make([]dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *dto.ProjectToProjectResponse(project)
	}

	return utils.SuccessResponse(c, responses)
}
