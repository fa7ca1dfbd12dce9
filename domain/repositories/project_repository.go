package repositories

import (
	"context"

	"taskhub/domain/models"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query ProjectQuery) ([]*models.Project, error)
	Count(ctx context.Context, query ProjectQuery) (int64, error)
}
