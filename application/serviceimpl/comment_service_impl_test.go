package serviceimpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/application/serviceimpl"
	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/infrastructure/postgres"
)

func TestCommentServiceLifecycle(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	projectSvc := serviceimpl.NewProjectService(postgres.NewProjectRepository(db), nil)
	taskSvc := serviceimpl.NewTaskService(postgres.NewTaskRepository(db), nil)
	userSvc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nil)
	commentSvc := serviceimpl.NewCommentService(postgres.NewCommentRepository(db), nil)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Dream Team"})
	require.NoError(t, err)
	project, err := projectSvc.CreateProject(ctx, &dto.CreateProjectRequest{Name: "Awesome App", TeamID: team.ID})
	require.NoError(t, err)
	task, err := taskSvc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "Implement X", ProjectID: project.ID})
	require.NoError(t, err)
	user, err := userSvc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "john_doe", Email: "john@example.com", Password: "Abcdef12",
	})
	require.NoError(t, err)

	comment, err := commentSvc.CreateComment(ctx, &dto.CreateCommentRequest{
		Text:   "Looks good",
		TaskID: task.ID,
		UserID: user.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	// Only the text is editable; author and task stay fixed.
	updated, err := commentSvc.UpdateComment(ctx, comment.ID, &dto.UpdateCommentRequest{
		Text: ptr("Needs changes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Needs changes", updated.Text)
	assert.Equal(t, task.ID, updated.TaskID)
	assert.Equal(t, user.ID, updated.UserID)

	comments, total, err := commentSvc.ListComments(ctx, repositories.CommentQuery{TaskID: &task.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, comments, 1)

	require.NoError(t, commentSvc.DeleteComment(ctx, comment.ID))
	assert.ErrorIs(t, commentSvc.DeleteComment(ctx, comment.ID), models.ErrCommentNotFound)
}

func TestCommentServiceOrphanParents(t *testing.T) {
	db := newTestDB(t)
	commentSvc := serviceimpl.NewCommentService(postgres.NewCommentRepository(db), nil)
	ctx := context.Background()

	_, err := commentSvc.CreateComment(ctx, &dto.CreateCommentRequest{
		Text: "Looks good", TaskID: 999, UserID: 999,
	})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}
