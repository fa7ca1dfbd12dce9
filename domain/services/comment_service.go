package services

import (
	"context"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type CommentService interface {
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error)
	GetComment(ctx context.Context, id uint) (*models.Comment, error)
	UpdateComment(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
	ListComments(ctx context.Context, query repositories.CommentQuery) ([]*models.Comment, int64, error)
}
