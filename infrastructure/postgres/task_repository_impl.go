package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Project{}, task.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProjectNotFound
			}
			return err
		}
		return tx.Create(task).Error
	})
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Project{}, task.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProjectNotFound
			}
			return err
		}
		return tx.Save(task).Error
	})
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTaskNotFound
			}
			return err
		}

		var comments int64
		if err := tx.Model(&models.Comment{}).Where("task_id = ?", id).Count(&comments).Error; err != nil {
			return err
		}
		if comments > 0 {
			return models.ErrHasChildren
		}

		return tx.Delete(&task).Error
	})
}

func (r *TaskRepositoryImpl) List(ctx context.Context, query repositories.TaskQuery) ([]*models.Task, error) {
	page := query.Normalize()
	var tasks []*models.Task
	err := r.applyFilters(r.db.WithContext(ctx), query).
		Order(query.OrderClause()).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, query repositories.TaskQuery) (int64, error) {
	var count int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&models.Task{}), query).Count(&count).Error
	return count, err
}

// Filters are conjunctive; a nil filter adds no clause. deadline_before
// is inclusive.
func (r *TaskRepositoryImpl) applyFilters(db *gorm.DB, query repositories.TaskQuery) *gorm.DB {
	if query.ProjectID != nil {
		db = db.Where("project_id = ?", *query.ProjectID)
	}
	if query.Status != nil {
		db = db.Where("status = ?", *query.Status)
	}
	if query.Priority != nil {
		db = db.Where("priority = ?", *query.Priority)
	}
	if query.DeadlineBefore != nil {
		db = db.Where("deadline <= ?", *query.DeadlineBefore)
	}
	return db
}
