package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hiring/cmd"
	"hiring/internal/adapters/out/gormstore"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	var gormDB *gorm.DB
	if configs.DBEnabled {
		db, err := gormstore.Open(configs.Database(), logger)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() { _ = gormstore.Close(db) }()
		gormDB = db
	} else {
		logger.Warn("DB_ENABLED is false, jobs are kept in memory")
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}

	if p := app.Provisioner(); p != nil {
		if err := p.WaitUntilAvailable(ctx, configs.DBWaitRetries, configs.DBWaitDelay); err != nil {
			return err
		}
		if configs.DBAutoMigrate {
			if err := gormstore.Migrate(gormDB); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
		}
	}

	if err := app.JobService().SeedIfEmpty(ctx); err != nil {
		return fmt.Errorf("seed default jobs: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	return startWebServer(ctx, e, configs.HTTPPort, logger)
}

// startWebServer serves until ctx is cancelled, then drains in-flight requests.
func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
