package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"email-task-assistant/config"
	"email-task-assistant/config/database"
	_ "email-task-assistant/docs" // Swagger docs
	"email-task-assistant/internal/auth"
	emailUC "email-task-assistant/internal/email/usecase"
	"email-task-assistant/internal/httpserver"
	"email-task-assistant/internal/migration"
	"email-task-assistant/internal/reminder"
	taskUC "email-task-assistant/internal/task/usecase"
	"email-task-assistant/pkg/gcalendar"
	"email-task-assistant/pkg/llmprovider"
	"email-task-assistant/pkg/log"
	"email-task-assistant/pkg/scope"
)

// @title       Email Task Assistant API
// @description Extracts tasks from email with an LLM, organizes them into teams and sends deadline reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
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

	logger.Info(ctx, "Starting Email Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer database.Disconnect(ctx, db)
	logger.Infof(ctx, "Database connected (driver=%s)", cfg.Database.Driver)

	if cfg.Database.AutoMigrate {
		applied, err := migration.Up(ctx, db, cfg.Database.Driver, logger)
		if err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return
		}
		logger.Infof(ctx, "Migrations applied: %d", len(applied))
	}

	// 4. Auth
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	oauthConfig := auth.NewOAuthConfig(cfg.GoogleOAuth)

	// 5. Google Calendar (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.Enabled {
		calendar = gcalendar.NewUserCalendar(oauthConfig)
		logger.Infof(ctx, "Google Calendar enabled (calendar=%s)", cfg.GoogleCalendar.CalendarID)
	}

	// 6. LLM providers (optional)
	llm := newLLM(ctx, logger, cfg.LLM)

	// 7. Reminder scheduler
	var wg sync.WaitGroup
	if cfg.Reminder.Enabled && cfg.Reminder.Embedded {
		scheduler, err := reminder.NewFromConfig(logger, cfg, db)
		if err != nil {
			logger.Warnf(ctx, "Reminder scheduler not available: %v", err)
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				scheduler.Run(ctx)
			}()
		}
	} else {
		logger.Info(ctx, "Embedded reminder scheduler disabled")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		DB:             db,
		JWTManager:     jwtManager,
		OAuth:          oauthConfig,
		Calendar:       calendar,
		CalendarOptions: taskUC.CalendarOptions{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.GoogleCalendar.Timezone,
		},
		LLM: llm,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	stop()
	wg.Wait()
	logger.Info(ctx, "Server stopped gracefully")
}

// newLLM returns nil when no provider is configured or none can be created,
// so the service still runs without extraction.
func newLLM(ctx context.Context, logger log.Logger, cfg config.LLMConfig) emailUC.LLM {
	if len(cfg.Providers) == 0 {
		logger.Warn(ctx, "No LLM providers configured: email extraction disabled")
		return nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, logger, &cfg)
	if err != nil {
		logger.Warnf(ctx, "LLM providers not available: %v", err)
		return nil
	}

	managerCfg, err := llmprovider.NewConfig(cfg)
	if err != nil {
		logger.Warnf(ctx, "Invalid LLM config: %v", err)
		return nil
	}

	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
	return llmprovider.NewManager(providers, managerCfg, logger)
}
