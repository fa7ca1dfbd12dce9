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

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.EventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.EventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		Deadline:    req.Deadline,
		ProjectID:   req.ProjectID,
	}

	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.WarnContext(ctx, "Failed to create task", "title", req.Title, "project_id", req.ProjectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "project_id", task.ProjectID)
	s.publish(ctx, "task.created", dto.TaskToTaskResponse(task))

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// UpdateTask applies only the supplied fields. Status may move between
// any two values; no transition graph is enforced. A stored deadline is
// not re-validated here — the one-hour lead applies only to a deadline
// arriving in this payload.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}
	if req.ProjectID != nil {
		task.ProjectID = *req.ProjectID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.WarnContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	s.publish(ctx, "task.updated", dto.TaskToTaskResponse(task))

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uint) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	s.publish(ctx, "task.deleted", map[string]uint{"id": id})

	return nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, query repositories.TaskQuery) ([]*models.Task, int64, error) {
	tasks, err := s.taskRepo.List(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, 0, err
	}

	count, err := s.taskRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return tasks, count, nil
}

func (s *TaskServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}
