package serviceimpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskhub/application/serviceimpl"
	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/infrastructure/postgres"
)

// newTeamService wires the service against the store only; the cache
// and the event publisher are optional and absent in tests.
func newTeamService(db *gorm.DB) services.TeamService {
	return serviceimpl.NewTeamService(
		postgres.NewTeamRepository(db),
		postgres.NewProjectRepository(db),
		nil,
		nil,
	)
}

func TestTeamServiceMembership(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	userSvc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nil)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Dream Team"})
	require.NoError(t, err)

	user, err := userSvc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "john_doe", Email: "john@example.com", Password: "Abcdef12",
	})
	require.NoError(t, err)

	require.NoError(t, teamSvc.AddMember(ctx, team.ID, user.ID))
	assert.ErrorIs(t, teamSvc.AddMember(ctx, team.ID, user.ID), models.ErrAlreadyMember)

	members, err := teamSvc.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, user.ID, members[0].ID)

	require.NoError(t, teamSvc.RemoveMember(ctx, team.ID, user.ID))
	assert.ErrorIs(t, teamSvc.RemoveMember(ctx, team.ID, user.ID), models.ErrNotMember)

	_, err = teamSvc.ListMembers(ctx, 999)
	assert.ErrorIs(t, err, models.ErrTeamNotFound)
}

func TestTeamServicePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{
		Name:        "Dream Team",
		Description: "The original lineup",
	})
	require.NoError(t, err)

	updated, err := teamSvc.UpdateTeam(ctx, team.ID, &dto.UpdateTeamRequest{
		Description: ptr("New lineup"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dream Team", updated.Name)
	assert.Equal(t, "New lineup", updated.Description)
}

func TestTeamServiceProjects(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	projectSvc := serviceimpl.NewProjectService(postgres.NewProjectRepository(db), nil)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Dream Team"})
	require.NoError(t, err)
	other, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Other Team"})
	require.NoError(t, err)

	_, err = projectSvc.CreateProject(ctx, &dto.CreateProjectRequest{Name: "Awesome App", TeamID: team.ID})
	require.NoError(t, err)
	_, err = projectSvc.CreateProject(ctx, &dto.CreateProjectRequest{Name: "Side Quest", TeamID: other.ID})
	require.NoError(t, err)

	projects, err := teamSvc.ListTeamProjects(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Awesome App", projects[0].Name)

	_, err = teamSvc.ListTeamProjects(ctx, 999)
	assert.ErrorIs(t, err, models.ErrTeamNotFound)
}

func TestTeamServiceDeleteBlocked(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	projectSvc := serviceimpl.NewProjectService(postgres.NewProjectRepository(db), nil)
	ctx := context.Background()

	team, err := teamSvc.CreateTeam(ctx, &dto.CreateTeamRequest{Name: "Dream Team"})
	require.NoError(t, err)

	project, err := projectSvc.CreateProject(ctx, &dto.CreateProjectRequest{Name: "Awesome App", TeamID: team.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, teamSvc.DeleteTeam(ctx, team.ID), models.ErrHasChildren)

	require.NoError(t, projectSvc.DeleteProject(ctx, project.ID))
	require.NoError(t, teamSvc.DeleteTeam(ctx, team.ID))
}
