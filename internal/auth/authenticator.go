package auth

import (
	"context"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/solbing/solbing-api/internal/model"
)

// MaxLoginAttempts is the maximum number of failed attempts a user gets
// inside the cooldown period.
var MaxLoginAttempts = 5

// CoolDownPeriod is the window in which failed attempts accumulate.
var CoolDownPeriod = "24h"

// SignUpInput carries the validated signup payload into the authenticator.
type SignUpInput struct {
	Email             string
	Password          string
	FirstName         string
	LastName          string
	Nickname          string
	Phone             string
	Occupation        string
	Location          string
	Bio               string
	FavoriteGenres    []model.Genre
	PreferredLanguage string
}

// Authenticator orchestrates signup and login against the credential
// store and the token service.
type Authenticator struct {
	store            UserStore
	tokens           TokenService
	logger           Logger
	deterministicIDs bool
}

// Option mutates an Authenticator during construction.
type Option func(*Authenticator)

// WithLogger overrides the default logger.
func WithLogger(l Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithDeterministicIDs derives user ids from the email instead of
// generating random UUIDs.
func WithDeterministicIDs(enabled bool) Option {
	return func(a *Authenticator) {
		a.deterministicIDs = enabled
	}
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store UserStore, tokens TokenService, opts ...Option) *Authenticator {
	a := &Authenticator{
		store:  store,
		tokens: tokens,
		logger: defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// SignUp registers a new user and issues a session token for it.
// Duplicate emails fail with a conflict error.
func (a *Authenticator) SignUp(ctx context.Context, input SignUpInput) (*model.PublicUser, string, error) {
	email := NormalizeEmail(input.Email)

	hash, err := HashPassword(input.Password)
	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			return nil, "", richErr
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user := &model.User{
		Email:             email,
		PasswordHash:      hash,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Nickname:          input.Nickname,
		Phone:             input.Phone,
		Occupation:        input.Occupation,
		Location:          input.Location,
		Bio:               input.Bio,
		FavoriteGenres:    input.FavoriteGenres,
		PreferredLanguage: input.PreferredLanguage,
	}

	if a.deterministicIDs {
		if id, err := hashid.NewUUID(email); err == nil {
			user.ID = id
		}
	}

	created, err := a.store.Create(ctx, user)
	if err != nil {
		a.logger.Error("SignUp create user error", "error", err, "email", email)
		return nil, "", err
	}

	token, err := a.tokens.Generate(created.ID.String())
	if err != nil {
		a.logger.Error("SignUp token generation error", "error", err)
		return nil, "", err
	}

	return created.Public(), token, nil
}

// Login verifies the credentials and issues a session token. Unknown
// emails and bad passwords fail identically.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*model.PublicUser, string, error) {
	user, err := a.store.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if user.LoginAttemptAt != nil {
		expired, err := IsOutsideThresholdPeriod(*user.LoginAttemptAt, CoolDownPeriod)
		if err != nil {
			return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to calculate login attempt cooldown")
		}

		if expired {
			user.LoginAttempts = 0
		}
	}

	// if we have too many attempts in the given window, cool off!
	if user.LoginAttempts >= MaxLoginAttempts {
		return nil, "", ErrTooManyAttempts
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if err2 := a.store.TrackAttemptedLogin(ctx, user); err2 != nil {
			return nil, "", errors.Wrap(err2, errors.CategoryInternal, "failed to track login attempt")
		}

		return nil, "", ErrInvalidCredentials
	}

	if err := a.store.TrackSuccessfulLogin(ctx, user); err != nil {
		a.logger.Error("failed to track successful login", "error", err)
	}

	token, err := a.tokens.Generate(user.ID.String())
	if err != nil {
		a.logger.Error("Login token generation error", "error", err)
		return nil, "", err
	}

	return user.Public(), token, nil
}

// NormalizeEmail lowercases and trims an email so uniqueness checks and
// lookups agree on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
