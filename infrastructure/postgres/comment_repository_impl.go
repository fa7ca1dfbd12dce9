package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

// Create checks both parents before the insert, in the same
// transaction.
func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Task{}, comment.TaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTaskNotFound
			}
			return err
		}
		if err := tx.First(&models.User{}, comment.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrUserNotFound
			}
			return err
		}
		return tx.Create(comment).Error
	})
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepositoryImpl) List(ctx context.Context, query repositories.CommentQuery) ([]*models.Comment, error) {
	page := query.Normalize()
	var comments []*models.Comment
	err := r.applyFilters(r.db.WithContext(ctx), query).
		Order(query.OrderClause()).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) Count(ctx context.Context, query repositories.CommentQuery) (int64, error) {
	var count int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&models.Comment{}), query).Count(&count).Error
	return count, err
}

func (r *CommentRepositoryImpl) applyFilters(db *gorm.DB, query repositories.CommentQuery) *gorm.DB {
	if query.TaskID != nil {
		db = db.Where("task_id = ?", *query.TaskID)
	}
	return db
}
