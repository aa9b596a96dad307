package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"email-task-assistant/config"
	"email-task-assistant/config/database"
	"email-task-assistant/internal/migration"
	"email-task-assistant/pkg/log"
)

// main applies the embedded schema for the configured database driver.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		os.Exit(1)
	}
	defer database.Disconnect(ctx, db)

	logger.Infof(ctx, "Running database migrations (driver=%s)...", cfg.Database.Driver)
	applied, err := migration.Up(ctx, db, cfg.Database.Driver, logger)
	if err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		database.Disconnect(ctx, db)
		os.Exit(1)
	}

	if len(applied) == 0 {
		logger.Info(ctx, "Schema is up to date")
		return
	}
	logger.Infof(ctx, "Migrations completed: %v", applied)
}
