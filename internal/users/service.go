// Package users implements profile reads and partial updates for the
// authenticated identity.
package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/solbing/solbing-api/internal/auth"
	"github.com/solbing/solbing-api/internal/i18n"
	"github.com/solbing/solbing-api/internal/model"
	"github.com/solbing/solbing-api/internal/store"
	"golang.org/x/text/language"
)

// GenreView pairs a stored genre key with its label in the negotiated
// language.
type GenreView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Profile is the localized, client-facing view of a user record.
type Profile struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	FirstName         string      `json:"first_name,omitempty"`
	LastName          string      `json:"last_name,omitempty"`
	Nickname          string      `json:"nickname,omitempty"`
	Phone             string      `json:"phone_number,omitempty"`
	Occupation        string      `json:"occupation,omitempty"`
	Location          string      `json:"location,omitempty"`
	Bio               string      `json:"bio,omitempty"`
	FavoriteGenres    []GenreView `json:"favorite_genres,omitempty"`
	PreferredLanguage string      `json:"preferred_language,omitempty"`
	Language          string      `json:"language"`
	CreatedAt         *time.Time  `json:"created_at,omitempty"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"`
}

// Service reads and writes profile fields for an identity.
type Service struct {
	store  store.Users
	logger auth.Logger
}

// NewService returns a profile service over the given store.
func NewService(users store.Users) *Service {
	return &Service{store: users}
}

// WithLogger overrides the service logger.
func (s *Service) WithLogger(l auth.Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

// GetProfile returns the profile for the given user id with genre
// labels resolved to the requested language.
func (s *Service) GetProfile(ctx context.Context, id string, lang language.Tag) (*Profile, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return newProfile(user, lang), nil
}

// UpdateProfile applies the supplied fields to the user record. Omitted
// fields are unchanged. Constraint violations fail before anything is
// written.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch ProfilePatch, lang language.Tag) (*Profile, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record := &model.User{ID: user.ID}
	columns := patch.apply(record)
	if len(columns) == 0 {
		return newProfile(user, lang), nil
	}

	updated, err := s.store.UpdateColumns(ctx, record, columns...)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("profile updated", "user_id", id, "columns", columns)
	}

	return newProfile(updated, lang), nil
}

func newProfile(user *model.User, lang language.Tag) *Profile {
	genres := make([]GenreView, 0, len(user.FavoriteGenres))
	for _, g := range user.FavoriteGenres {
		genres = append(genres, GenreView{
			Key:   g,
			Label: i18n.GenreLabel(lang, g),
		})
	}

	return &Profile{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Nickname:          user.Nickname,
		Phone:             user.Phone,
		Occupation:        user.Occupation,
		Location:          user.Location,
		Bio:               user.Bio,
		FavoriteGenres:    genres,
		PreferredLanguage: user.PreferredLanguage,
		Language:          lang.String(),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
