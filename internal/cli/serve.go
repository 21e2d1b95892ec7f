package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/terraincognita07/dayglow/internal/api"
	"github.com/terraincognita07/dayglow/internal/auth"
	"github.com/terraincognita07/dayglow/internal/config"
	"github.com/terraincognita07/dayglow/internal/db"
	"github.com/terraincognita07/dayglow/internal/insights"
	"github.com/terraincognita07/dayglow/internal/llm"
	"github.com/terraincognita07/dayglow/internal/logging"
	"github.com/terraincognita07/dayglow/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(parent context.Context, cfg *config.Config, log *zap.Logger) error {
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, closeApp, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeApp()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("dayglow listening",
		zap.String("addr", "0.0.0.0:"+cfg.Port),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("llm_provider", cfg.LLMProvider),
		zap.String("tz", cfg.Location.String()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// buildApp wires storage, the model client and the HTTP routes. The returned
// func releases the database handle.
func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*fiber.App, func(), error) {
	database, err := db.Open(cfg.Database(), log)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}
	closeDB := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}

	model, err := llm.New(ctx, cfg.LLM())
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("language model init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	evidence := insights.NewEvidenceBuilder(insights.Sources{
		Moods:     repositories.Moods,
		Stools:    repositories.Stools,
		Foods:     repositories.Foods,
		Symptoms:  repositories.Symptoms,
		CycleDays: repositories.CycleDays,
	}, log.Named("evidence"), cfg.Location)

	handler := api.NewHandler(
		insights.NewService(evidence, model, log.Named("insights"), cfg.LLMTimeout),
		services.NewCycleStatsService(repositories.CycleDays, cfg.Location),
		auth.NewVerifier(cfg.AuthSecret, cfg.AuthIssuer),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:               "Dayglow",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	return app, closeDB, nil
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
