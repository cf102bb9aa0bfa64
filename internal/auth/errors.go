package auth

import "github.com/goliatone/go-errors"

const (
	TextCodeInvalidCredentials = "auth_invalid_credentials"
	TextCodeEmailExists        = "auth_email_exists"
	TextCodeTokenMissing       = "auth_token_missing"
	TextCodeTokenExpired       = "auth_token_expired"
	TextCodeTokenMalformed     = "auth_token_malformed"
	TextCodeTooManyAttempts    = "auth_too_many_attempts"
	TextCodeIdentityNotFound   = "auth_identity_not_found"
)

// ErrInvalidCredentials is returned for an unknown email or a password
// mismatch. The message is the same in both cases so callers cannot tell
// which check failed.
var ErrInvalidCredentials = errors.New("invalid email or password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrEmailExists is returned when signing up with an email that is
// already registered.
var ErrEmailExists = errors.New("email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailExists).
	WithCode(errors.CodeConflict)

// ErrTokenMissing is returned when a protected request carries no
// bearer token.
var ErrTokenMissing = errors.New("missing or malformed authorization header", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMissing).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when the token's embedded expiry has passed.
var ErrTokenExpired = errors.New("token expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when the token cannot be parsed or its
// signature does not verify.
var ErrTokenMalformed = errors.New("invalid token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTooManyAttempts is returned when login attempts exceed the cooldown
// threshold.
var ErrTooManyAttempts = errors.New("too many login attempts", errors.CategoryAuth).
	WithTextCode(TextCodeTooManyAttempts).
	WithCode(errors.CodeUnauthorized)

// ErrIdentityNotFound is returned when a verified token references a
// user that no longer exists.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryAuth).
	WithTextCode(TextCodeIdentityNotFound).
	WithCode(errors.CodeUnauthorized)
