package serviceimpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/application/serviceimpl"
	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/infrastructure/postgres"
)

func TestUserServiceUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nil)
	ctx := context.Background()

	first, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "Abcdef12",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "jane_doe",
		Email:    "john@example.com",
		Password: "Abcdef12",
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	_, err = svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "john_doe",
		Email:    "jane@example.com",
		Password: "Abcdef12",
	})
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
}

func TestUserServicePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nil)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "Abcdef12",
	})
	require.NoError(t, err)

	// Only the supplied field changes.
	updated, err := svc.UpdateUser(ctx, user.ID, &dto.UpdateUserRequest{
		Email: ptr("john.new@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "john.new@example.com", updated.Email)
	assert.Equal(t, "john_doe", updated.Username)
	assert.Equal(t, "Abcdef12", updated.Password)

	// Re-sending the current email is not a conflict.
	_, err = svc.UpdateUser(ctx, user.ID, &dto.UpdateUserRequest{
		Email: ptr("john.new@example.com"),
	})
	assert.NoError(t, err)
}

func TestUserServiceUpdateConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nil)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "john_doe", Email: "john@example.com", Password: "Abcdef12",
	})
	require.NoError(t, err)

	jane, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "jane_doe", Email: "jane@example.com", Password: "Abcdef12",
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, jane.ID, &dto.UpdateUserRequest{Email: ptr("john@example.com")})
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	_, err = svc.UpdateUser(ctx, jane.ID, &dto.UpdateUserRequest{Username: ptr("john_doe")})
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	_, err = svc.UpdateUser(ctx, 999, &dto.UpdateUserRequest{Email: ptr("ghost@example.com")})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserServiceList(t *testing.T) {
	db := newTestDB(t)
	svc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nil)
	ctx := context.Background()

	names := []string{"alice_a", "bob_b", "carol_c"}
	for i, name := range names {
		_, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			Username: name,
			Email:    name + "@example.com",
			Password: "Abcdef12",
		})
		require.NoError(t, err, "user %d", i)
	}

	users, total, err := svc.ListUsers(ctx, userQueryPage(1, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, "bob_b", users[0].Username)
}
