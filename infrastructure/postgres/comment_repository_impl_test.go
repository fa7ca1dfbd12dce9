package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/infrastructure/postgres"
)

func TestCommentCreateChecksBothParents(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewCommentRepository(db)
	ctx := context.Background()

	team := seedTeam(t, db)
	project := seedProject(t, db, team.ID)
	task := seedTask(t, db, project.ID)
	user := seedUser(t, db)

	err := repo.Create(ctx, &models.Comment{Text: "Looks good", TaskID: 999, UserID: user.ID})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	err = repo.Create(ctx, &models.Comment{Text: "Looks good", TaskID: task.ID, UserID: 999})
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	comment := &models.Comment{Text: "Looks good", TaskID: task.ID, UserID: user.ID}
	require.NoError(t, repo.Create(ctx, comment))
	assert.NotZero(t, comment.ID)
}

func TestCommentListFilteredByTask(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewCommentRepository(db)
	ctx := context.Background()

	team := seedTeam(t, db)
	project := seedProject(t, db, team.ID)
	taskA := seedTask(t, db, project.ID)
	taskB := seedTask(t, db, project.ID)
	user := seedUser(t, db)

	seedComment(t, db, taskA.ID, user.ID)
	seedComment(t, db, taskA.ID, user.ID)
	seedComment(t, db, taskB.ID, user.ID)

	got, err := repo.List(ctx, repositories.CommentQuery{TaskID: &taskA.ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	count, err := repo.Count(ctx, repositories.CommentQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestCommentDelete(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewCommentRepository(db)
	ctx := context.Background()

	team := seedTeam(t, db)
	project := seedProject(t, db, team.ID)
	task := seedTask(t, db, project.ID)
	user := seedUser(t, db)
	comment := seedComment(t, db, task.ID, user.ID)

	require.NoError(t, repo.Delete(ctx, comment.ID))

	err := repo.Delete(ctx, comment.ID)
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
}
