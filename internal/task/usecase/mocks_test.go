package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/task/repository"
	"email-task-assistant/internal/user"
	"email-task-assistant/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo keeps tasks in a map and records the last options it received.
type mockRepo struct {
	tasks      map[string]model.Task
	nextID     int
	lastCreate repo.CreateTaskOptions
	lastList   repo.ListTasksOptions
	lastStatus repo.UpdateStatusOptions
	calendarID string
	stats      repo.Stats
	err        error
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string]model.Task{}}
}

func (m *mockRepo) put(t model.Task) {
	m.tasks[t.ID] = t
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.lastCreate = opt
	m.nextID++
	t := model.Task{
		ID:           "t" + string(rune('0'+m.nextID)),
		UserID:       opt.UserID,
		EmailID:      opt.EmailID,
		TeamID:       opt.TeamID,
		AssignedTo:   opt.AssignedTo,
		Title:        opt.Title,
		Description:  opt.Description,
		Priority:     opt.Priority,
		Status:       model.TaskStatusPending,
		DueDate:      opt.DueDate,
		ReminderTime: opt.ReminderTime,
	}
	m.put(t)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	m.lastList = opt
	var out []model.Task
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Title, t.Description, t.Priority = opt.Title, opt.Description, opt.Priority
	t.DueDate, t.TeamID, t.AssignedTo = opt.DueDate, opt.TeamID, opt.AssignedTo
	m.put(t)
	return t, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Task, error) {
	m.lastStatus = opt
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Status = opt.Status
	m.put(t)
	return t, nil
}

func (m *mockRepo) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	m.calendarID = eventID
	return nil
}

func (m *mockRepo) ListHistory(ctx context.Context, taskID string) ([]model.TaskHistory, error) {
	return []model.TaskHistory{{TaskID: taskID, ToStatus: model.TaskStatusCompleted}}, nil
}

func (m *mockRepo) Stats(ctx context.Context, opt repo.StatsOptions) (repo.Stats, error) {
	return m.stats, m.err
}

func (m *mockRepo) SetReminder(ctx context.Context, id string, at *time.Time) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, nil
	}
	t.ReminderTime = at
	m.put(t)
	return t, nil
}

func (m *mockRepo) FindDue(ctx context.Context, now time.Time, after *model.DueCursor, limit int) ([]model.DueTask, error) {
	return nil, nil
}

func (m *mockRepo) ClearReminder(ctx context.Context, id string, expected time.Time) (bool, error) {
	return false, nil
}

type mockUsers struct {
	users map[string]model.User
}

func (m *mockUsers) Detail(ctx context.Context, id string) (model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, user.ErrUserNotFound
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return model.User{}, user.ErrUserNotFound
}

func (m *mockUsers) Upsert(ctx context.Context, input user.UpsertInput) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}

type mockTeams struct {
	members map[string]bool // teamID/userID
}

func (m *mockTeams) GetMember(ctx context.Context, teamID, userID string) (model.TeamMember, error) {
	if m.members[teamID+"/"+userID] {
		return model.TeamMember{TeamID: teamID, UserID: userID, Role: model.TeamRoleMember}, nil
	}
	return model.TeamMember{}, nil
}

type mockCalendar struct {
	calls   int
	lastReq gcalendar.CreateEventRequest
	lastTok *oauth2.Token
	err     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, tok *oauth2.Token, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	m.lastReq = req
	m.lastTok = tok
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar/evt-1"}, nil
}
