package services

import (
	"context"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TeamService interface {
	CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uint) (*models.Team, error)
	UpdateTeam(ctx context.Context, id uint, req *dto.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uint) error
	ListTeams(ctx context.Context, query repositories.TeamQuery) ([]*models.Team, int64, error)

	AddMember(ctx context.Context, teamID, userID uint) error
	RemoveMember(ctx context.Context, teamID, userID uint) error
	ListMembers(ctx context.Context, teamID uint) ([]*models.User, error)
	ListTeamProjects(ctx context.Context, teamID uint) ([]*models.Project, error)
}
