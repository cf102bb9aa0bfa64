package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/solbing/solbing-api/internal/model"
	"github.com/uptrace/bun"
)

// Users is the credential store for user records.
type Users interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, record *model.User) (*model.User, error)
	UpdateColumns(ctx context.Context, record *model.User, columns ...string) (*model.User, error)
	TrackAttemptedLogin(ctx context.Context, user *model.User) error
	TrackSuccessfulLogin(ctx context.Context, user *model.User) error
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns a Users store backed by the given bun DB.
func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func (a *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	record := &model.User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", strings.TrimSpace(id)).
		Limit(1).
		Scan(ctx)

	if err != nil {
		return nil, wrapSelectErr(err, "id", id)
	}

	return record, nil
}

func (a *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	record := &model.User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)

	if err != nil {
		return nil, wrapSelectErr(err, "email", email)
	}

	return record, nil
}

func (a *users) Create(ctx context.Context, record *model.User) (*model.User, error) {
	prepareUserDefaults(record)

	if _, err := a.db.NewInsert().Model(record).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, errors.New("email already registered", errors.CategoryConflict).
				WithTextCode("auth_email_exists").
				WithCode(errors.CodeConflict).
				WithMetadata(map[string]any{"email": record.Email})
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not create user")
	}

	return a.GetByID(ctx, record.ID.String())
}

// UpdateColumns persists only the named columns of the record, leaving
// every other field untouched, and returns the fresh row.
func (a *users) UpdateColumns(ctx context.Context, record *model.User, columns ...string) (*model.User, error) {
	if len(columns) == 0 {
		return a.GetByID(ctx, record.ID.String())
	}

	now := time.Now()
	record.UpdatedAt = &now
	columns = append(columns, "updated_at")

	res, err := a.db.NewUpdate().
		Model(record).
		Column(columns...).
		WherePK().
		Where("?TableAlias.deleted_at IS NULL").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.New("email already registered", errors.CategoryConflict).
				WithTextCode("auth_email_exists").
				WithCode(errors.CodeConflict)
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not update user")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, notFoundErr("id", record.ID.String())
	}

	return a.GetByID(ctx, record.ID.String())
}

func (a *users) TrackSuccessfulLogin(ctx context.Context, user *model.User) error {
	// NOTE: raw update so login_attempt_at is reset to NULL in the same
	// statement.
	loggedInAt := time.Now()
	_, err := a.db.NewRaw(`
		UPDATE "users" AS "usr"
		SET
			"loggedin_at" = ?,
			"login_attempt_at" = NULL,
			"login_attempts" = 0
		WHERE
			("usr".id = ?)
			AND "usr"."deleted_at" IS NULL;
	`, loggedInAt, user.ID).Exec(ctx)

	return err
}

func (a *users) TrackAttemptedLogin(ctx context.Context, user *model.User) error {
	now := time.Now()
	record := &model.User{
		ID:             user.ID,
		LoginAttempts:  user.LoginAttempts + 1,
		LoginAttemptAt: &now,
	}

	_, err := a.db.NewUpdate().
		Model(record).
		Column("login_attempts", "login_attempt_at").
		WherePK().
		Exec(ctx)

	return err
}

func prepareUserDefaults(record *model.User) {
	if record == nil {
		return
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	if record.CreatedAt == nil {
		now := time.Now()
		record.CreatedAt = &now
		record.UpdatedAt = &now
	}
}

func wrapSelectErr(err error, column, value string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr(column, value)
	}
	return errors.Wrap(err, errors.CategoryInternal, "user lookup failed")
}

func notFoundErr(column, value string) error {
	return errors.New("user not found", errors.CategoryNotFound).
		WithTextCode("user_not_found").
		WithCode(errors.CodeNotFound).
		WithMetadata(map[string]any{column: value})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
