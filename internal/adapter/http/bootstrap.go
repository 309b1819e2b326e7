package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taskapp/internal/adapter/database/postgres"
	pgrepo "taskapp/internal/adapter/database/postgres/repository"
	"taskapp/internal/adapter/database/sqlite"
	sqliterepo "taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/http/routes"
	"taskapp/internal/adapter/token"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
	"taskapp/pkg/config"
)

// StartServer opens the configured database, wires the container, and
// serves until ctx is cancelled. It blocks.
func StartServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger, metrics *telemetry.AppMetrics) error {
	var (
		userRepo port.UserRepository
		taskRepo port.TaskRepository
		closeDB  func()
	)

	switch cfg.Database.Driver {
	case "sqlite":
		db, err := sqlite.NewDB(cfg.Database.Path, cfg.Database.MigrationsPath, logger)

		if err != nil {
			return fmt.Errorf("open sqlite database: %w", err)
		}

		userRepo = sqliterepo.NewUserRepository(db)
		taskRepo = sqliterepo.NewTaskRepository(db)
		closeDB = func() { db.Close() }

	case "postgres":
		db, err := postgres.NewDB(ctx, cfg.Database.URL, cfg.Database.MigrationsPath)

		if err != nil {
			return fmt.Errorf("open postgres database: %w", err)
		}

		userRepo = pgrepo.NewUserRepository(db)
		taskRepo = pgrepo.NewTaskRepository(db)
		closeDB = db.Close

	default:
		return fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	defer closeDB()

	codec, err := token.NewJWTCodec(cfg.JWT.Secret, cfg.JWT.Expiration)

	if err != nil {
		return fmt.Errorf("token codec: %w", err)
	}

	container := NewContainer(userRepo, taskRepo, codec, metrics)

	handlers := routes.HandlersConfig{
		AuthHandler:   container.AuthHandler,
		TaskHandler:   container.TaskHandler,
		Authenticator: container.Authenticator,
	}

	if cfg.Cache.Enabled {
		ttl, err := time.ParseDuration(cfg.Cache.TTL)

		if err != nil {
			return fmt.Errorf("cache ttl: %w", err)
		}

		handlers.TaskCache = middleware.NewTaskCache(ttl, logger, metrics)
	}

	gin.SetMode(routes.ModeForEnvironment(cfg.Environment))

	router := routes.SetupRouter(handlers, metrics, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info().Msg("shutting down http server")

	return srv.Shutdown(shutdownCtx)
}
