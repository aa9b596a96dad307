package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "email-task-assistant/internal/auth/delivery/http"
	authUC "email-task-assistant/internal/auth/usecase"
	emailHTTP "email-task-assistant/internal/email/delivery/http"
	emailRepo "email-task-assistant/internal/email/repository/sqldb"
	emailUC "email-task-assistant/internal/email/usecase"
	"email-task-assistant/internal/middleware"
	"email-task-assistant/internal/task"
	taskHTTP "email-task-assistant/internal/task/delivery/http"
	taskRepo "email-task-assistant/internal/task/repository/sqldb"
	taskUC "email-task-assistant/internal/task/usecase"
	"email-task-assistant/internal/team"
	teamHTTP "email-task-assistant/internal/team/delivery/http"
	teamRepo "email-task-assistant/internal/team/repository/sqldb"
	teamUC "email-task-assistant/internal/team/usecase"
	"email-task-assistant/internal/user"
	userHTTP "email-task-assistant/internal/user/delivery/http"
	userRepo "email-task-assistant/internal/user/repository/sqldb"
	userUC "email-task-assistant/internal/user/usecase"
)

// domains holds the use cases shared across route groups.
type domains struct {
	users user.UseCase
	tasks task.UseCase
	teams team.UseCase
}

// newDomains wires repositories and use cases in dependency order:
// users, then tasks (which check team membership), then teams.
func (srv HTTPServer) newDomains() domains {
	users := userUC.New(srv.l, userRepo.New(srv.db, srv.l))
	tr := teamRepo.New(srv.db, srv.l)
	tasks := taskUC.New(srv.l, taskRepo.New(srv.db, srv.l), users, tr, srv.calendar, srv.calendarOpt)
	teams := teamUC.New(srv.l, tr, users, tasks)

	return domains{
		users: users,
		tasks: tasks,
		teams: teams,
	}
}

// setupAuthDomain registers /api/oauth/*. These routes are public.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	profile := srv.profile
	if profile == nil {
		profile = authUC.NewGoogleProfile()
	}
	uc := authUC.New(srv.l, srv.oauth, d.users, srv.jwtManager, profile)
	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, uc))
	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, d domains, mw middleware.Middleware) {
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, d.users), mw)
	srv.l.Infof(ctx, "User domain registered")
}

func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, d domains, mw middleware.Middleware) {
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, d.tasks), mw)
	if srv.calendar != nil {
		srv.l.Infof(ctx, "Task domain registered, calendar=%s", srv.calendarOpt.CalendarID)
		return
	}
	srv.l.Infof(ctx, "Task domain registered, calendar events disabled")
}

func (srv HTTPServer) setupTeamDomain(ctx context.Context, api *gin.RouterGroup, d domains, mw middleware.Middleware) {
	teamHTTP.RegisterRoutes(api, teamHTTP.New(srv.l, d.teams), mw)
	srv.l.Infof(ctx, "Team domain registered")
}

func (srv HTTPServer) setupEmailDomain(ctx context.Context, api *gin.RouterGroup, d domains, mw middleware.Middleware) {
	uc := emailUC.New(srv.l, emailRepo.New(srv.db, srv.l), d.tasks, srv.llm)
	emailHTTP.RegisterRoutes(api, emailHTTP.New(srv.l, uc), mw)
	if srv.llm == nil {
		srv.l.Warnf(ctx, "Email domain registered without an LLM: extraction returns no tasks")
		return
	}
	srv.l.Infof(ctx, "Email domain registered")
}
