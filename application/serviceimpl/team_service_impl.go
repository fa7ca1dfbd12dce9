package serviceimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	redispkg "taskhub/infrastructure/redis"
	"taskhub/pkg/logger"
)

const memberCacheTTL = 5 * time.Minute

type TeamServiceImpl struct {
	teamRepo    repositories.TeamRepository
	projectRepo repositories.ProjectRepository
	cache       *redispkg.Client // optional, nil means DB-only
	events      ports.EventPublisher
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	projectRepo repositories.ProjectRepository,
	cache *redispkg.Client,
	events ports.EventPublisher,
) services.TeamService {
	return &TeamServiceImpl{
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
		cache:       cache,
		events:      events,
	}
}

func (s *TeamServiceImpl) CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		logger.ErrorContext(ctx, "Failed to create team", "name", req.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Team created", "team_id", team.ID, "name", team.Name)
	s.publish(ctx, "team.created", dto.TeamToTeamResponse(team))

	return team, nil
}

func (s *TeamServiceImpl) GetTeam(ctx context.Context, id uint) (*models.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *TeamServiceImpl) UpdateTeam(ctx context.Context, id uint, req *dto.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		logger.ErrorContext(ctx, "Failed to update team", "team_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Team updated", "team_id", id)
	s.publish(ctx, "team.updated", dto.TeamToTeamResponse(team))

	return team, nil
}

func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, id uint) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateMembers(ctx, id)
	logger.InfoContext(ctx, "Team deleted", "team_id", id)
	s.publish(ctx, "team.deleted", map[string]uint{"id": id})

	return nil
}

func (s *TeamServiceImpl) ListTeams(ctx context.Context, query repositories.TeamQuery) ([]*models.Team, int64, error) {
	teams, err := s.teamRepo.List(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list teams", "error", err)
		return nil, 0, err
	}

	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return teams, count, nil
}

func (s *TeamServiceImpl) AddMember(ctx context.Context, teamID, userID uint) error {
	if err := s.teamRepo.AddMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.invalidateMembers(ctx, teamID)
	logger.InfoContext(ctx, "Team member added", "team_id", teamID, "user_id", userID)
	s.publish(ctx, "team.member_added", map[string]uint{"teamId": teamID, "userId": userID})

	return nil
}

func (s *TeamServiceImpl) RemoveMember(ctx context.Context, teamID, userID uint) error {
	if err := s.teamRepo.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.invalidateMembers(ctx, teamID)
	logger.InfoContext(ctx, "Team member removed", "team_id", teamID, "user_id", userID)
	s.publish(ctx, "team.member_removed", map[string]uint{"teamId": teamID, "userId": userID})

	return nil
}

// ListMembers serves from the cache when possible and falls back to
// the store; membership writes invalidate the key.
func (s *TeamServiceImpl) ListMembers(ctx context.Context, teamID uint) ([]*models.User, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	key := memberCacheKey(teamID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var cached []*models.User
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
		} else if !redispkg.IsMiss(err) {
			logger.WarnContext(ctx, "Member cache read failed", "team_id", teamID, "error", err)
		}
	}

	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(members); err == nil {
			if err := s.cache.Set(ctx, key, raw, memberCacheTTL); err != nil {
				logger.WarnContext(ctx, "Member cache write failed", "team_id", teamID, "error", err)
			}
		}
	}

	return members, nil
}

func (s *TeamServiceImpl) ListTeamProjects(ctx context.Context, teamID uint) ([]*models.Project, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.projectRepo.List(ctx, repositories.ProjectQuery{TeamID: &teamID})
}

func memberCacheKey(teamID uint) string {
	return fmt.Sprintf("team:%d:members", teamID)
}

func (s *TeamServiceImpl) invalidateMembers(ctx context.Context, teamID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, memberCacheKey(teamID)); err != nil {
		logger.WarnContext(ctx, "Member cache invalidation failed", "team_id", teamID, "error", err)
	}
}

func (s *TeamServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}
