package repositories

import (
	"context"

	"taskhub/domain/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query CommentQuery) ([]*models.Comment, error)
	Count(ctx context.Context, query CommentQuery) (int64, error)
}
