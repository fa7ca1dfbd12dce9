package services

import (
	"context"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
	ListUsers(ctx context.Context, query repositories.UserQuery) ([]*models.User, int64, error)
}
