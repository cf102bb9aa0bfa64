package store_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/solbing/solbing-api/internal/model"
	"github.com/solbing/solbing-api/internal/store"
)

func setupDB(t *testing.T) *bun.DB {
	t.Helper()

	// Each test gets its own named in-memory database so state never
	// leaks between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, store.Init(context.Background(), db))
	return db
}

func seedUser(t *testing.T, repo store.Users, email string) *model.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &model.User{
		Email:        email,
		PasswordHash: "hash",
		Nickname:     "nick",
	})
	require.NoError(t, err)
	return created
}

func TestUsers_Create(t *testing.T) {
	ctx := context.Background()
	repo := store.NewUsersRepository(setupDB(t))

	created, err := repo.Create(ctx, &model.User{
		Email:          "a@b.com",
		PasswordHash:   "hash",
		FavoriteGenres: []model.Genre{model.GenreHorror, model.GenreSciFi},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.CreatedAt)
	assert.Equal(t, []model.Genre{model.GenreHorror, model.GenreSciFi}, created.FavoriteGenres)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.User{Email: "a@b.com", PasswordHash: "other"})
		require.Error(t, err)

		var richErr *errors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, errors.CategoryConflict, richErr.Category)
		assert.Equal(t, errors.CodeConflict, richErr.Code)
	})
}

func TestUsers_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := store.NewUsersRepository(setupDB(t))
	seedUser(t, repo, "a@b.com")

	found, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.GetByEmail(ctx, "nobody@b.com")
	assert.True(t, errors.IsNotFound(err))
}

func TestUsers_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := store.NewUsersRepository(setupDB(t))
	created := seedUser(t, repo, "a@b.com")

	found, err := repo.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.IsNotFound(err))
}

func TestUsers_UpdateColumns(t *testing.T) {
	ctx := context.Background()
	repo := store.NewUsersRepository(setupDB(t))
	created := seedUser(t, repo, "a@b.com")

	t.Run("updates only the named columns", func(t *testing.T) {
		created.Bio = "movie buff"
		created.Nickname = "should-not-change"

		updated, err := repo.UpdateColumns(ctx, created, "bio")
		require.NoError(t, err)

		assert.Equal(t, "movie buff", updated.Bio)
		assert.Equal(t, "nick", updated.Nickname)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("no columns is a plain reload", func(t *testing.T) {
		reloaded, err := repo.UpdateColumns(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, created.ID, reloaded.ID)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		ghost := &model.User{Email: "ghost@b.com", Bio: "?"}
		ghost.ID = created.ID
		ghost.ID[0] ^= 0xff

		_, err := repo.UpdateColumns(ctx, ghost, "bio")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("email collision conflicts", func(t *testing.T) {
		other := seedUser(t, repo, "other@b.com")
		other.Email = "a@b.com"

		_, err := repo.UpdateColumns(ctx, other, "email")
		require.Error(t, err)

		var richErr *errors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, errors.CategoryConflict, richErr.Category)
	})
}

func TestUsers_LoginTracking(t *testing.T) {
	ctx := context.Background()
	repo := store.NewUsersRepository(setupDB(t))
	created := seedUser(t, repo, "a@b.com")

	require.NoError(t, repo.TrackAttemptedLogin(ctx, created))

	tracked, err := repo.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, tracked.LoginAttempts)
	require.NotNil(t, tracked.LoginAttemptAt)
	assert.WithinDuration(t, time.Now(), *tracked.LoginAttemptAt, 5*time.Second)

	require.NoError(t, repo.TrackSuccessfulLogin(ctx, tracked))

	reset, err := repo.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, reset.LoginAttempts)
	assert.Nil(t, reset.LoginAttemptAt)
	assert.NotNil(t, reset.LoggedInAt)
}
