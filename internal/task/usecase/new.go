package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task/repository"
	"email-task-assistant/internal/user"
	"email-task-assistant/pkg/gcalendar"
	pkgLog "email-task-assistant/pkg/log"
)

// Calendar creates calendar events on behalf of a user.
type Calendar interface {
	CreateEvent(ctx context.Context, tok *oauth2.Token, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Membership looks up team membership. A zero TeamMember means not a member.
type Membership interface {
	GetMember(ctx context.Context, teamID, userID string) (model.TeamMember, error)
}

// CalendarOptions controls calendar events created for new tasks.
type CalendarOptions struct {
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	users    user.UseCase
	teams    Membership
	calendar Calendar
	calOpt   CalendarOptions
	now      func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil to disable calendar events.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	users user.UseCase,
	teams Membership,
	calendar Calendar,
	calOpt CalendarOptions,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		users:    users,
		teams:    teams,
		calendar: calendar,
		calOpt:   calOpt,
		now:      time.Now,
	}
}
