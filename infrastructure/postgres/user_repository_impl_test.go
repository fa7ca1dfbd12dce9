package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/domain/models"
	"taskhub/infrastructure/postgres"
)

func TestUserLookups(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserUniqueIndexes(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)

	dup := &models.User{Username: user.Username, Email: "other@example.com", Password: "Secret12"}
	err := repo.Create(ctx, dup)
	assert.Error(t, err)
}

func TestUserDeleteBlockedByChildren(t *testing.T) {
	db := newTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	ctx := context.Background()

	team := seedTeam(t, db)
	project := seedProject(t, db, team.ID)
	task := seedTask(t, db, project.ID)

	commenter := seedUser(t, db)
	comment := seedComment(t, db, task.ID, commenter.ID)

	err := userRepo.Delete(ctx, commenter.ID)
	assert.ErrorIs(t, err, models.ErrHasChildren)

	require.NoError(t, db.Delete(comment).Error)

	require.NoError(t, teamRepo.AddMember(ctx, team.ID, commenter.ID))
	err = userRepo.Delete(ctx, commenter.ID)
	assert.ErrorIs(t, err, models.ErrHasChildren)

	require.NoError(t, teamRepo.RemoveMember(ctx, team.ID, commenter.ID))
	require.NoError(t, userRepo.Delete(ctx, commenter.ID))

	err = userRepo.Delete(ctx, commenter.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
