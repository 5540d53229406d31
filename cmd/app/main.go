package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/satheeshkumar89/fastfoodie-backend/cmd"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/adapters/out/postgres"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/logger"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/pkg/metrics"

	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(config.LogLevel, config.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err = run(config, log); err != nil {
		log.Fatal("Service stopped with error", zap.Error(err))
	}
}

func run(config cmd.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	if err := postgres.Migrate(config.DSN(), log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, config, gormDB, log)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	router := app.CreateHTTPRouter()
	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("port", config.HTTPPort))
		if startErr := router.Start("0.0.0.0:" + config.HTTPPort); !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case err = <-serverErr:
		log.Error("HTTP server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := router.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Warn("HTTP server shutdown", zap.Error(shutdownErr))
	}
	jobManager.StopAll()
	if closeErr := app.Close(shutdownCtx); closeErr != nil {
		log.Warn("Component shutdown", zap.Error(closeErr))
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	return err
}
