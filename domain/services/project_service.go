package services

import (
	"context"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	UpdateProject(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	ListProjects(ctx context.Context, query repositories.ProjectQuery) ([]*models.Project, int64, error)
}
