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

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	events      ports.EventPublisher
}

func NewCommentService(commentRepo repositories.CommentRepository, events ports.EventPublisher) services.CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		events:      events,
	}
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   req.Text,
		TaskID: req.TaskID,
		UserID: req.UserID,
	}

	// CreatedAt is assigned by the store; the repository checks both
	// parents before the insert.
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.WarnContext(ctx, "Failed to create comment", "task_id", req.TaskID, "user_id", req.UserID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Comment created", "comment_id", comment.ID, "task_id", comment.TaskID)
	s.publish(ctx, "comment.created", dto.CommentToCommentResponse(comment))

	return comment, nil
}

func (s *CommentServiceImpl) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		logger.WarnContext(ctx, "Failed to update comment", "comment_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Comment updated", "comment_id", id)
	s.publish(ctx, "comment.updated", dto.CommentToCommentResponse(comment))

	return comment, nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, id uint) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Comment deleted", "comment_id", id)
	s.publish(ctx, "comment.deleted", map[string]uint{"id": id})

	return nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, query repositories.CommentQuery) ([]*models.Comment, int64, error) {
	comments, err := s.commentRepo.List(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list comments", "error", err)
		return nil, 0, err
	}

	count, err := s.commentRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return comments, count, nil
}

func (s *CommentServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}
