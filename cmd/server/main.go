package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/solbing/solbing-api/internal/auth"
	"github.com/solbing/solbing-api/internal/config"
	"github.com/solbing/solbing-api/internal/server"
	"github.com/solbing/solbing-api/internal/store"
	"github.com/solbing/solbing-api/internal/users"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("solbing"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg, err := config.Load()
	if err != nil {
		lgr.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := store.Open(cfg.DBDSN)
	if err != nil {
		lgr.Error("failed to open database", "error", err, "dsn", cfg.DBDSN)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.Init(ctx, db); err != nil {
		lgr.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	usersRepo := store.NewUsersRepository(db)

	auth.BcryptCost = cfg.BcryptCost

	tokens := auth.NewTokenService(
		[]byte(cfg.JWTSecret),
		cfg.JWTExpirationHours,
		cfg.JWTIssuer,
		cfg.JWTAudience,
		lgr.GetLogger("tokens"),
	)

	authn := auth.NewAuthenticator(usersRepo, tokens,
		auth.WithLogger(lgr.GetLogger("auth")),
		auth.WithDeterministicIDs(cfg.DeterministicIDs),
	)

	profiles := users.NewService(usersRepo).WithLogger(lgr.GetLogger("users"))

	srv := server.New(cfg, authn, tokens, usersRepo, profiles,
		server.WithLogger(lgr.GetLogger("server")),
	)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		lgr.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			lgr.Error("shutdown error", "error", err)
		}
	}()

	lgr.Info("starting server", "addr", cfg.Addr())
	if err := srv.Listen(); err != nil {
		lgr.Error("server error", "error", err)
		os.Exit(1)
	}
}
