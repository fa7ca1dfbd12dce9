package repositories

import (
	"context"

	"taskhub/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query TaskQuery) ([]*models.Task, error)
	Count(ctx context.Context, query TaskQuery) (int64, error)
}
