package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/travelease/callcenter/internal/infrastructure/cache"
	"github.com/travelease/callcenter/internal/infrastructure/config"
	"github.com/travelease/callcenter/internal/infrastructure/database"
	"github.com/travelease/callcenter/internal/infrastructure/migration"
	httpRouter "github.com/travelease/callcenter/internal/interfaces/http"
	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/goroutine"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/version"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the call center API server with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations before serving")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := MapEnvToGinMode(env)

	cfg, err := config.Load(ginMode)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"version", version.String(),
		"environment", env,
		"mode", cfg.Server.Mode,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := runMigrations(cfg, log); err != nil {
			return err
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(cmd.Context(), &cfg.Redis)
		if err != nil {
			return err
		}
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	}

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	defer router.Shutdown()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infow("server listening", "address", srv.Addr)
	serveErr := goroutine.Go(log, "http-server", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func runMigrations(cfg *config.Config, log logger.Interface) error {
	if env == constants.EnvProduction {
		log.Warnw("auto-migration is enabled in production")
	}

	manager, err := migration.NewManager(env, cfg.Database.Driver)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}
	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// MapEnvToGinMode translates an environment name into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
