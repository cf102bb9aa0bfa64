package store

import (
	"context"
	"database/sql"

	"github.com/solbing/solbing-api/internal/model"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Open connects to the database behind the given DSN and returns a bun
// client over it.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Init creates the schema for every registered model. Safe to run on
// every boot.
func Init(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*model.User)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}
