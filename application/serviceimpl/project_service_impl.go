package serviceimpl

import (
	"context"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	events      ports.EventPublisher
}

func NewProjectService(projectRepo repositories.ProjectRepository, events ports.EventPublisher) services.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		events:      events,
	}
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		TeamID:      req.TeamID,
	}

	// The repository verifies the parent team in the same transaction
	// as the insert.
	if err := s.projectRepo.Create(ctx, project); err != nil {
		logger.WarnContext(ctx, "Failed to create project", "name", req.Name, "team_id", req.TeamID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project created", "project_id", project.ID, "team_id", project.TeamID)
	s.publish(ctx, "project.created", dto.ProjectToProjectResponse(project))

	return project, nil
}

func (s *ProjectServiceImpl) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TeamID != nil {
		project.TeamID = *req.TeamID
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		logger.WarnContext(ctx, "Failed to update project", "project_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project updated", "project_id", id)
	s.publish(ctx, "project.updated", dto.ProjectToProjectResponse(project))

	return project, nil
}

func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id uint) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Project deleted", "project_id", id)
	s.publish(ctx, "project.deleted", map[string]uint{"id": id})

	return nil
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context, query repositories.ProjectQuery) ([]*models.Project, int64, error) {
	projects, err := s.projectRepo.List(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list projects", "error", err)
		return nil, 0, err
	}

	count, err := s.projectRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return projects, count, nil
}

func (s *ProjectServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}
