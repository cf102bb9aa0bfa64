package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Genre is one of the enumerated content tags a user can favorite.
type Genre = string

const (
	GenreAction      Genre = "action"
	GenreAdventure   Genre = "adventure"
	GenreComedy      Genre = "comedy"
	GenreDrama       Genre = "drama"
	GenreHorror      Genre = "horror"
	GenreRomance     Genre = "romance"
	GenreSciFi       Genre = "sci-fi"
	GenreThriller    Genre = "thriller"
	GenreDocumentary Genre = "documentary"
)

// Genres lists every valid genre tag.
var Genres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreComedy,
	GenreDrama,
	GenreHorror,
	GenreRomance,
	GenreSciFi,
	GenreThriller,
	GenreDocumentary,
}

// IsValidGenre reports whether g is one of the enumerated genre tags.
func IsValidGenre(g string) bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID                uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email             string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash      string     `bun:"password_hash,notnull" json:"-"`
	FirstName         string     `bun:"first_name" json:"first_name,omitempty"`
	LastName          string     `bun:"last_name" json:"last_name,omitempty"`
	Nickname          string     `bun:"nickname" json:"nickname,omitempty"`
	Phone             string     `bun:"phone_number" json:"phone_number,omitempty"`
	Occupation        string     `bun:"occupation" json:"occupation,omitempty"`
	Location          string     `bun:"location" json:"location,omitempty"`
	Bio               string     `bun:"bio" json:"bio,omitempty"`
	FavoriteGenres    []Genre    `bun:"favorite_genres" json:"favorite_genres,omitempty"`
	PreferredLanguage string     `bun:"preferred_language" json:"preferred_language,omitempty"`
	LoginAttempts     int        `bun:"login_attempts" json:"-"`
	LoginAttemptAt    *time.Time `bun:"login_attempt_at" json:"-"`
	LoggedInAt        *time.Time `bun:"loggedin_at" json:"-"`
	CreatedAt         *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt         *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt         *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}

// PublicUser is the representation of a user that is safe to return to
// clients. The password hash never crosses this boundary.
type PublicUser struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	Nickname          string     `json:"nickname,omitempty"`
	Phone             string     `json:"phone_number,omitempty"`
	Occupation        string     `json:"occupation,omitempty"`
	Location          string     `json:"location,omitempty"`
	Bio               string     `json:"bio,omitempty"`
	FavoriteGenres    []Genre    `json:"favorite_genres,omitempty"`
	PreferredLanguage string     `json:"preferred_language,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// Public returns the client-safe representation of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Nickname:          u.Nickname,
		Phone:             u.Phone,
		Occupation:        u.Occupation,
		Location:          u.Location,
		Bio:               u.Bio,
		FavoriteGenres:    u.FavoriteGenres,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}
