package users_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/solbing/solbing-api/internal/i18n"
	"github.com/solbing/solbing-api/internal/model"
	"github.com/solbing/solbing-api/internal/store"
	"github.com/solbing/solbing-api/internal/users"
)

func setupService(t *testing.T) (*users.Service, *model.User) {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Init(ctx, db))

	repo := store.NewUsersRepository(db)
	seeded, err := repo.Create(ctx, &model.User{
		Email:          "ada@example.com",
		PasswordHash:   "hash",
		FirstName:      "Ada",
		Nickname:       "ada",
		Bio:            "original bio",
		FavoriteGenres: []model.Genre{model.GenreHorror, model.GenreSciFi},
	})
	require.NoError(t, err)

	return users.NewService(repo), seeded
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("localizes genre labels", func(t *testing.T) {
		service, seeded := setupService(t)

		profile, err := service.GetProfile(ctx, seeded.ID.String(), language.Spanish)
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", profile.Email)
		assert.Equal(t, "es", profile.Language)
		require.Len(t, profile.FavoriteGenres, 2)
		assert.Equal(t, users.GenreView{Key: "horror", Label: "Terror"}, profile.FavoriteGenres[0])
		assert.Equal(t, users.GenreView{Key: "sci-fi", Label: "Ciencia ficción"}, profile.FavoriteGenres[1])
	})

	t.Run("defaults to english labels", func(t *testing.T) {
		service, seeded := setupService(t)

		profile, err := service.GetProfile(ctx, seeded.ID.String(), i18n.Default())
		require.NoError(t, err)
		assert.Equal(t, "en", profile.Language)
		assert.Equal(t, "Horror", profile.FavoriteGenres[0].Label)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, _ := setupService(t)

		_, err := service.GetProfile(ctx, "00000000-0000-0000-0000-000000000000", i18n.Default())
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		service, seeded := setupService(t)

		profile, err := service.UpdateProfile(ctx, seeded.ID.String(), users.ProfilePatch{
			Bio: strPtr("new bio"),
		}, i18n.Default())
		require.NoError(t, err)

		assert.Equal(t, "new bio", profile.Bio)
		assert.Equal(t, "Ada", profile.FirstName)
		assert.Equal(t, "ada", profile.Nickname)
		require.Len(t, profile.FavoriteGenres, 2)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		service, seeded := setupService(t)

		profile, err := service.UpdateProfile(ctx, seeded.ID.String(), users.ProfilePatch{}, i18n.Default())
		require.NoError(t, err)
		assert.Equal(t, "original bio", profile.Bio)
	})

	t.Run("email is normalized before writing", func(t *testing.T) {
		service, seeded := setupService(t)

		profile, err := service.UpdateProfile(ctx, seeded.ID.String(), users.ProfilePatch{
			Email: strPtr("  NEW@Example.COM "),
		}, i18n.Default())
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", profile.Email)
	})

	t.Run("validation failures write nothing", func(t *testing.T) {
		service, seeded := setupService(t)

		_, err := service.UpdateProfile(ctx, seeded.ID.String(), users.ProfilePatch{
			Bio:            strPtr("should not land"),
			FavoriteGenres: &[]model.Genre{"western"},
		}, i18n.Default())
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "favorite_genres")

		profile, err := service.GetProfile(ctx, seeded.ID.String(), i18n.Default())
		require.NoError(t, err)
		assert.Equal(t, "original bio", profile.Bio)
	})

	t.Run("genres update relabels in the requested language", func(t *testing.T) {
		service, seeded := setupService(t)

		profile, err := service.UpdateProfile(ctx, seeded.ID.String(), users.ProfilePatch{
			FavoriteGenres: &[]model.Genre{model.GenreDocumentary},
		}, language.Arabic)
		require.NoError(t, err)

		require.Len(t, profile.FavoriteGenres, 1)
		assert.Equal(t, "documentary", profile.FavoriteGenres[0].Key)
		assert.Equal(t, "وثائقي", profile.FavoriteGenres[0].Label)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, _ := setupService(t)

		_, err := service.UpdateProfile(ctx, "00000000-0000-0000-0000-000000000000", users.ProfilePatch{
			Bio: strPtr("x"),
		}, i18n.Default())
		assert.True(t, errors.IsNotFound(err))
	})
}
