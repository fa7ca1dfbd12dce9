package services

import (
	"context"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id uint) (*models.Task, error)
	UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id uint) error
	ListTasks(ctx context.Context, query repositories.TaskQuery) ([]*models.Task, int64, error)
}
