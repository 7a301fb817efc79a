package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/repository"
)

func TestPostgresUserRepository_Ensure(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("creates a missing user with the default role", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user, err := userRepo.Ensure(ctx, "alice")

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("is stable across repeated calls", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		first, err := userRepo.Ensure(ctx, "alice")
		require.NoError(t, err)
		second, err := userRepo.Ensure(ctx, "alice")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("keeps a role assigned out of band", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user, err := userRepo.Ensure(ctx, "mod")
		require.NoError(t, err)

		_, err = testDB.Pool.Exec(ctx, `UPDATE users SET role = 'moderator' WHERE id = $1`, user.ID)
		require.NoError(t, err)

		again, err := userRepo.Ensure(ctx, "mod")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleModerator, again.Role)
	})
}

func TestPostgresUserRepository_GetByUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("finds an existing user", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		created, err := userRepo.Ensure(ctx, "alice")
		require.NoError(t, err)

		user, err := userRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("missing user yields nil, not an error", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user, err := userRepo.GetByUsername(ctx, "nobody")

		require.NoError(t, err)
		assert.Nil(t, user)
	})
}
