package serviceimpl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/application/serviceimpl"
	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/infrastructure/postgres"
)

func TestTaskServiceDefaults(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	projectSvc := serviceimpl.NewProjectService(postgres.NewProjectRepository(db), nil)
	taskSvc := serviceimpl.NewTaskService(postgres.NewTaskRepository(db), nil)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Dream Team"})
	require.NoError(t, err)
	project, err := projectSvc.CreateProject(ctx, &dto.CreateProjectRequest{Name: "Awesome App", TeamID: team.ID})
	require.NoError(t, err)

	task, err := taskSvc.CreateTask(ctx, &dto.CreateTaskRequest{
		Title:     "Implement X",
		ProjectID: project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Nil(t, task.Deadline)

	explicit, err := taskSvc.CreateTask(ctx, &dto.CreateTaskRequest{
		Title:     "Implement Y",
		Status:    "in_progress",
		Priority:  "high",
		ProjectID: project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, explicit.Status)
	assert.Equal(t, models.PriorityHigh, explicit.Priority)
}

func TestTaskServicePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	projectSvc := serviceimpl.NewProjectService(postgres.NewProjectRepository(db), nil)
	taskSvc := serviceimpl.NewTaskService(postgres.NewTaskRepository(db), nil)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Dream Team"})
	require.NoError(t, err)
	project, err := projectSvc.CreateProject(ctx, &dto.CreateProjectRequest{Name: "Awesome App", TeamID: team.ID})
	require.NoError(t, err)

	deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	task, err := taskSvc.CreateTask(ctx, &dto.CreateTaskRequest{
		Title:     "Implement X",
		Status:    "done",
		Deadline:  &deadline,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	// Any status transition is allowed, including backwards.
	updated, err := taskSvc.UpdateTask(ctx, task.ID, &dto.UpdateTaskRequest{
		Status: ptr("todo"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, updated.Status)
	assert.Equal(t, "Implement X", updated.Title)
	require.NotNil(t, updated.Deadline)
	assert.True(t, deadline.Equal(*updated.Deadline))

	_, err = taskSvc.UpdateTask(ctx, task.ID, &dto.UpdateTaskRequest{
		ProjectID: ptr(uint(999)),
	})
	assert.ErrorIs(t, err, models.ErrProjectNotFound)

	_, err = taskSvc.UpdateTask(ctx, 999, &dto.UpdateTaskRequest{Title: ptr("Ghost task")})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}
