package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
)

var testNow = time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC) // Wednesday

type fixture struct {
	uc    *implUseCase
	repo  *mockRepo
	cal   *mockCalendar
	owner model.Scope
}

func newFixture() *fixture {
	r := newMockRepo()
	cal := &mockCalendar{}
	users := &mockUsers{users: map[string]model.User{
		"owner@example.com": {ID: "u1", Email: "owner@example.com", GoogleRefreshToken: "refresh"},
		"mate@example.com":  {ID: "u2", Email: "mate@example.com"},
	}}
	teams := &mockTeams{members: map[string]bool{"team1/u1": true}}

	uc := New(&mockLogger{}, r, users, teams, cal, CalendarOptions{CalendarID: "primary", Timezone: "UTC"})
	uc.now = func() time.Time { return testNow }
	return &fixture{uc: uc, repo: r, cal: cal, owner: model.Scope{UserID: "u1", Email: "owner@example.com"}}
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
		check   func(t *testing.T, f *fixture, out task.CreateOutput)
	}{
		{
			name:    "empty title",
			input:   task.CreateInput{Title: "   "},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "invalid priority",
			input:   task.CreateInput{Title: "a", Priority: "urgent"},
			wantErr: task.ErrInvalidPriority,
		},
		{
			name:    "reminder in the past",
			input:   task.CreateInput{Title: "a", ReminderTime: ptr(testNow.Add(-time.Minute))},
			wantErr: task.ErrReminderInPast,
		},
		{
			name:    "unknown assignee",
			input:   task.CreateInput{Title: "a", AssigneeEmail: "ghost@example.com"},
			wantErr: task.ErrAssigneeNotFound,
		},
		{
			name:    "team the caller is not in",
			input:   task.CreateInput{Title: "a", TeamID: "team2"},
			wantErr: task.ErrNotTeamMember,
		},
		{
			name:  "due text resolved and calendar event created",
			input: task.CreateInput{Title: " Send report ", Priority: "HIGH", DueText: "next friday", AssigneeEmail: "mate@example.com", TeamID: "team1"},
			check: func(t *testing.T, f *fixture, out task.CreateOutput) {
				want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
				if out.Task.DueDate == nil || !out.Task.DueDate.Equal(want) {
					t.Errorf("DueDate = %v, want %v", out.Task.DueDate, want)
				}
				if out.Task.Title != "Send report" || out.Task.Priority != model.TaskPriorityHigh {
					t.Errorf("task = %+v", out.Task)
				}
				if out.Task.AssignedTo == nil || *out.Task.AssignedTo != "u2" {
					t.Errorf("AssignedTo = %v, want u2", out.Task.AssignedTo)
				}
				if out.CalendarLink != "https://calendar/evt-1" || f.repo.calendarID != "evt-1" {
					t.Errorf("calendar link = %q, stored id = %q", out.CalendarLink, f.repo.calendarID)
				}
				if !f.cal.lastReq.AllDay || f.cal.lastTok.RefreshToken != "refresh" {
					t.Errorf("calendar request = %+v", f.cal.lastReq)
				}
			},
		},
		{
			name:  "unresolved due text omits the deadline",
			input: task.CreateInput{Title: "a", DueText: "whenever"},
			check: func(t *testing.T, f *fixture, out task.CreateOutput) {
				if out.Task.DueDate != nil {
					t.Errorf("DueDate = %v, want nil", out.Task.DueDate)
				}
				if out.Task.Priority != model.TaskPriorityMedium {
					t.Errorf("Priority = %q, want medium", out.Task.Priority)
				}
				if f.cal.calls != 0 {
					t.Errorf("calendar calls = %d, want 0", f.cal.calls)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			out, err := f.uc.Create(ctx, f.owner, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, f, out)
			}
		})
	}
}

func TestCreateCalendarFailureIsNonFatal(t *testing.T) {
	f := newFixture()
	f.cal.err = errors.New("quota exceeded")

	out, err := f.uc.Create(context.Background(), f.owner, task.CreateInput{Title: "a", DueText: "tomorrow"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if out.CalendarLink != "" || out.Task.ID == "" {
		t.Errorf("Create() = %+v", out)
	}
}

func TestCreateBulkSkipsInvalid(t *testing.T) {
	f := newFixture()
	out, err := f.uc.CreateBulk(context.Background(), f.owner, task.CreateBulkInput{
		EmailID: "e1",
		Tasks: []task.CreateInput{
			{Title: "first"},
			{Title: ""},
			{Title: "second"},
		},
	})
	if err != nil {
		t.Fatalf("CreateBulk() error = %v", err)
	}
	if out.TaskCount != 2 {
		t.Fatalf("TaskCount = %d, want 2", out.TaskCount)
	}
	if out.Tasks[0].EmailID == nil || *out.Tasks[0].EmailID != "e1" {
		t.Errorf("EmailID = %v, want e1", out.Tasks[0].EmailID)
	}
}

func TestOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.repo.put(model.Task{ID: "mine", UserID: "u1", Status: model.TaskStatusPending})
	f.repo.put(model.Task{ID: "assigned", UserID: "u9", AssignedTo: ptr("u1"), Status: model.TaskStatusPending})
	f.repo.put(model.Task{ID: "other", UserID: "u9", Status: model.TaskStatusPending})

	if _, err := f.uc.Detail(ctx, f.owner, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail(missing) error = %v", err)
	}
	if _, err := f.uc.Detail(ctx, f.owner, "other"); !errors.Is(err, task.ErrForbidden) {
		t.Errorf("Detail(other) error = %v", err)
	}
	if _, err := f.uc.Detail(ctx, f.owner, "assigned"); err != nil {
		t.Errorf("Detail(assigned) error = %v", err)
	}
	if _, err := f.uc.Confirm(ctx, f.owner, "assigned"); err != nil {
		t.Errorf("Confirm(assigned) error = %v", err)
	}
	if _, err := f.uc.Reject(ctx, f.owner, "assigned"); !errors.Is(err, task.ErrForbidden) {
		t.Errorf("Reject(assigned) error = %v, want ErrForbidden", err)
	}
	if _, err := f.uc.Update(ctx, f.owner, task.UpdateInput{ID: "assigned", Title: "x"}); !errors.Is(err, task.ErrForbidden) {
		t.Errorf("Update(assigned) error = %v, want ErrForbidden", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   task.UpdateInput
		wantErr error
		wantDue *time.Time
	}{
		{"keeps deadline when text is unresolved", task.UpdateInput{ID: "t", DueText: "someday"}, nil, &due},
		{"resolves relative text", task.UpdateInput{ID: "t", DueText: "in 2 days"}, nil, ptr(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))},
		{"clears deadline", task.UpdateInput{ID: "t", ClearDueDate: true}, nil, nil},
		{"invalid priority", task.UpdateInput{ID: "t", Priority: "nope"}, task.ErrInvalidPriority, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.repo.put(model.Task{ID: "t", UserID: "u1", Title: "old", Priority: model.TaskPriorityLow, DueDate: &due})

			out, err := f.uc.Update(ctx, f.owner, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if out.Task.Title != "old" {
				t.Errorf("Title = %q, want unchanged", out.Task.Title)
			}
			switch {
			case tt.wantDue == nil && out.Task.DueDate != nil:
				t.Errorf("DueDate = %v, want nil", out.Task.DueDate)
			case tt.wantDue != nil && (out.Task.DueDate == nil || !out.Task.DueDate.Equal(*tt.wantDue)):
				t.Errorf("DueDate = %v, want %v", out.Task.DueDate, *tt.wantDue)
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.repo.put(model.Task{ID: "t", UserID: "u1", Status: model.TaskStatusPending})

	if _, err := f.uc.UpdateStatus(ctx, f.owner, task.UpdateStatusInput{ID: "t", Status: "done"}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("UpdateStatus(invalid) error = %v", err)
	}

	out, err := f.uc.Confirm(ctx, f.owner, "t")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if out.Task.Status != model.TaskStatusCompleted || f.repo.lastStatus.Note != noteConfirmed || f.repo.lastStatus.ActorID != "u1" {
		t.Errorf("Confirm() status = %s, opts = %+v", out.Task.Status, f.repo.lastStatus)
	}

	out, err = f.uc.Reject(ctx, f.owner, "t")
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if out.Task.Status != model.TaskStatusDeleted {
		t.Errorf("Reject() status = %s", out.Task.Status)
	}

	history, err := f.uc.History(ctx, f.owner, "t")
	if err != nil || len(history.Entries) != 1 {
		t.Errorf("History() = %+v, %v", history, err)
	}
}

func TestSetReminder(t *testing.T) {
	ctx := context.Background()
	future := time.Date(2024, 1, 4, 9, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	tests := []struct {
		name    string
		status  model.TaskStatus
		input   task.SetReminderInput
		wantErr error
	}{
		{"naive timestamp", model.TaskStatusPending, task.SetReminderInput{ID: "t", ReminderTime: future}, task.ErrReminderNoTimezone},
		{"in the past", model.TaskStatusPending, task.SetReminderInput{ID: "t", ReminderTime: testNow.Add(-time.Hour), Zoned: true}, task.ErrReminderInPast},
		{"terminal task", model.TaskStatusCompleted, task.SetReminderInput{ID: "t", ReminderTime: future, Zoned: true}, task.ErrTerminalTask},
		{"stored in UTC", model.TaskStatusPending, task.SetReminderInput{ID: "t", ReminderTime: future, Zoned: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.repo.put(model.Task{ID: "t", UserID: "u1", Status: tt.status})

			out, err := f.uc.SetReminder(ctx, f.owner, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetReminder() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if out.Task.ReminderTime == nil || out.Task.ReminderTime.Location() != time.UTC || !out.Task.ReminderTime.Equal(future) {
				t.Errorf("ReminderTime = %v", out.Task.ReminderTime)
			}

			out, err = f.uc.RemoveReminder(ctx, f.owner, "t")
			if err != nil || out.Task.ReminderTime != nil {
				t.Errorf("RemoveReminder() = %v, %v", out.Task.ReminderTime, err)
			}
		})
	}
}

func TestViews(t *testing.T) {
	ctx := context.Background()

	t.Run("upcoming defaults to seven days", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.Upcoming(ctx, f.owner, 0); err != nil {
			t.Fatalf("Upcoming() error = %v", err)
		}
		opt := f.repo.lastList
		if !opt.OnlyOpen || opt.DueFrom == nil || opt.DueTo == nil {
			t.Fatalf("options = %+v", opt)
		}
		if !opt.DueFrom.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)) || !opt.DueTo.Equal(testNow.Add(7*24*time.Hour)) {
			t.Errorf("range = %v..%v", opt.DueFrom, opt.DueTo)
		}
	})

	t.Run("overdue", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.Overdue(ctx, f.owner); err != nil {
			t.Fatalf("Overdue() error = %v", err)
		}
		if opt := f.repo.lastList; opt.DueTo == nil || !opt.DueTo.Equal(testNow) || opt.DueFrom != nil {
			t.Errorf("options = %+v", opt)
		}
	})

	t.Run("reminders", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.ListReminders(ctx, f.owner); err != nil {
			t.Fatalf("ListReminders() error = %v", err)
		}
		if opt := f.repo.lastList; opt.ReminderAfter == nil || !opt.OnlyOpen {
			t.Errorf("options = %+v", opt)
		}
	})

	t.Run("team listing requires membership", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.List(ctx, f.owner, task.ListInput{TeamID: "team2"}); !errors.Is(err, task.ErrNotTeamMember) {
			t.Errorf("List(team2) error = %v", err)
		}
		if _, err := f.uc.List(ctx, f.owner, task.ListInput{TeamID: "team1", Limit: 1000}); err != nil {
			t.Fatalf("List(team1) error = %v", err)
		}
		if opt := f.repo.lastList; opt.UserID != "" || opt.TeamID != "team1" || opt.Limit != maxListLimit {
			t.Errorf("options = %+v", opt)
		}
	})

	t.Run("analytics", func(t *testing.T) {
		f := newFixture()
		f.repo.stats.ByStatus = map[model.TaskStatus]int{
			model.TaskStatusPending:   3,
			model.TaskStatusCompleted: 1,
			model.TaskStatusDeleted:   5,
		}
		f.repo.stats.Overdue = 2
		out, err := f.uc.Analytics(ctx, f.owner)
		if err != nil {
			t.Fatalf("Analytics() error = %v", err)
		}
		if out.Total != 4 || out.Completed != 1 || out.CompletionRate != 0.25 || out.Overdue != 2 {
			t.Errorf("Analytics() = %+v", out)
		}
	})
}
