package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"email-task-assistant/config"
	"email-task-assistant/config/database"
	"email-task-assistant/internal/reminder"
	"email-task-assistant/pkg/log"
)

// main runs the reminder scheduler on its own, for deployments where the API
// is started with reminder.embedded=false.
//
// The process polls the task store every reminder.interval and stops after the
// in-flight delivery when it receives SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
		Compress:     cfg.Logger.Compress,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.Reminder.Enabled {
		logger.Warn(ctx, "reminder.enabled is false, nothing to do")
		return
	}

	logger.Infof(ctx, "Starting reminder worker (channel=%s)...", cfg.Reminder.Channel)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer database.Disconnect(ctx, db)

	scheduler, err := reminder.NewFromConfig(logger, cfg, db)
	if err != nil {
		logger.Error(ctx, "Failed to initialize reminder scheduler: ", err)
		return
	}

	scheduler.Run(ctx)
	logger.Info(ctx, "Reminder worker stopped gracefully")
}
