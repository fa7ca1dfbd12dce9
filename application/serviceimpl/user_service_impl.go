package serviceimpl

import (
	"context"
	"errors"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	events   ports.EventPublisher
}

func NewUserService(userRepo repositories.UserRepository, events ports.EventPublisher) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		events:   events,
	}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}
	if err := s.checkUsernameFree(ctx, req.Username); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "username", req.Username, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "username", user.Username)
	s.publish(ctx, "user.created", dto.UserToUserResponse(user))

	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser merges only the supplied fields onto the stored record.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		if err := s.checkUsernameFree(ctx, *req.Username); err != nil {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User updated", "user_id", id)
	s.publish(ctx, "user.updated", dto.UserToUserResponse(user))

	return user, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.InfoContext(ctx, "User deleted", "user_id", id)
	s.publish(ctx, "user.deleted", map[string]uint{"id": id})

	return nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, query repositories.UserQuery) ([]*models.User, int64, error) {
	users, err := s.userRepo.List(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, 0, err
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// The unique indexes on email and username remain the race-proof
// backstop; these checks exist to produce the specific conflict error.
func (s *UserServiceImpl) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return models.ErrEmailTaken
	}
	if errors.Is(err, models.ErrUserNotFound) {
		return nil
	}
	return err
}

func (s *UserServiceImpl) checkUsernameFree(ctx context.Context, username string) error {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return models.ErrUsernameTaken
	}
	if errors.Is(err, models.ErrUserNotFound) {
		return nil
	}
	return err
}

func (s *UserServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}
