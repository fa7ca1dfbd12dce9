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

func TestProjectCreateRequiresTeam(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewProjectRepository(db)
	ctx := context.Background()

	project := &models.Project{Name: "Orphan", TeamID: 999}
	err := repo.Create(ctx, project)
	assert.ErrorIs(t, err, models.ErrTeamNotFound)
}

func TestProjectListFilteredByTeam(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewProjectRepository(db)
	ctx := context.Background()

	teamA := seedTeam(t, db)
	teamB := seedTeam(t, db)
	seedProject(t, db, teamA.ID)
	seedProject(t, db, teamA.ID)
	seedProject(t, db, teamB.ID)

	got, err := repo.List(ctx, repositories.ProjectQuery{TeamID: &teamA.ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, teamA.ID, p.TeamID)
	}

	all, err := repo.List(ctx, repositories.ProjectQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	count, err := repo.Count(ctx, repositories.ProjectQuery{TeamID: &teamB.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestProjectDeleteBlockedByTasks(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewProjectRepository(db)
	ctx := context.Background()

	team := seedTeam(t, db)
	project := seedProject(t, db, team.ID)
	task := seedTask(t, db, project.ID)

	err := repo.Delete(ctx, project.ID)
	assert.ErrorIs(t, err, models.ErrHasChildren)

	require.NoError(t, db.Delete(task).Error)
	require.NoError(t, repo.Delete(ctx, project.ID))

	_, err = repo.GetByID(ctx, project.ID)
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}
