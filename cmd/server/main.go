// @title       Hospital Triage Specialist Recommendation API
// @version     1.0.0
// @description An API that recommends specialist hospital departments based on patient symptoms, gender, and age using an LLM.
// @BasePath    /
// @schemes     http
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/artem13815/triage/docs"

	// internal imports
	"github.com/artem13815/triage/api/http"
	"github.com/artem13815/triage/api/http/handlers"
	"github.com/artem13815/triage/api/http/middleware"
	"github.com/artem13815/triage/api/http/presenter"
	"github.com/artem13815/triage/pkg/config"
	"github.com/artem13815/triage/pkg/health"
	"github.com/artem13815/triage/pkg/health/checkers"
	"github.com/artem13815/triage/pkg/logger"
	"github.com/artem13815/triage/pkg/triage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port  string
		debug bool
	)
	cmd := &cobra.Command{
		Use:           "triage-server",
		Short:         "Serve hospital department recommendations from patient symptoms",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Load configuration from env/.env, flags win when given
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}

			log := logger.New(cfg.Debug)
			defer func() { _ = log.Sync() }()

			if err := cfg.Validate(); err != nil {
				log.Error("invalid configuration", zap.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging (overrides DEBUG)")
	return cmd
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	model, err := newChatModel(ctx, cfg)
	if err != nil {
		log.Error("init llm", zap.Error(err))
		return err
	}
	log.Info("llm provider ready",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", model.Model()),
	)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          presenter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(log))

	// Wire dependencies
	triageUC := triage.NewService(model, log.Named("triage"))
	triageHandler := handlers.NewTriageHandler(triageUC, log.Named("http"))

	readiness := health.NewService(checkers.NewLLMChecker(cfg.LLMProvider, model))
	healthHandler := handlers.NewHealthHandler(readiness)

	http.Register(app, healthHandler, triageHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
