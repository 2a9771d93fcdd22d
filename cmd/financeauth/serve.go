package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/financeassistant/authform/internal/api"
	"github.com/financeassistant/authform/internal/core/service"
	"github.com/financeassistant/authform/internal/infrastructure/config"
	mongostore "github.com/financeassistant/authform/internal/infrastructure/db/mongo"
	"github.com/financeassistant/authform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the authentication server",
		Long: `Run the HTTP server behind the form: POST /api/user/login and
POST /api/user/register backed by MongoDB. Configured through PORT, JWT_SECRET,
TOKEN_TTL, MONGO_URI and MONGO_DB.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.LoadServer(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.IsDevelopment(),
		Component: "server",
	})

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()

	users := mongostore.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		AuthService: service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL),
		JWTSecret:   cfg.JWTSecret,
		HealthChecks: map[string]func(context.Context) error{
			"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
		},
		Log: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("authentication server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
