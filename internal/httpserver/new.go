package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"golang.org/x/oauth2"

	"email-task-assistant/config"
	authUC "email-task-assistant/internal/auth/usecase"
	emailUC "email-task-assistant/internal/email/usecase"
	taskUC "email-task-assistant/internal/task/usecase"
	"email-task-assistant/pkg/log"
	"email-task-assistant/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	rateLimit      config.RateLimitConfig

	// Storage
	db *sqlx.DB

	// Auth
	jwtManager scope.Manager
	oauth      *oauth2.Config
	profile    authUC.ProfileFetcher

	// Task domain
	calendar    taskUC.Calendar
	calendarOpt taskUC.CalendarOptions

	// Email domain
	llm emailUC.LLM

	server *http.Server
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	RateLimit      config.RateLimitConfig

	DB *sqlx.DB

	JWTManager scope.Manager
	OAuth      *oauth2.Config
	// Profile overrides the Google profile lookup used at sign-in.
	Profile authUC.ProfileFetcher

	// Calendar may be nil to disable calendar events for new tasks.
	Calendar        taskUC.Calendar
	CalendarOptions taskUC.CalendarOptions

	// LLM may be nil; extraction then yields no tasks and replies fail with 503.
	LLM emailUC.LLM
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		rateLimit:      cfg.RateLimit,
		db:             cfg.DB,
		jwtManager:     cfg.JWTManager,
		oauth:          cfg.OAuth,
		profile:        cfg.Profile,
		calendar:       cfg.Calendar,
		calendarOpt:    cfg.CalendarOptions,
		llm:            cfg.LLM,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.oauth == nil {
		return errors.New("oauth config is required")
	}
	return nil
}
