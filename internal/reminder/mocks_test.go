package reminder

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"email-task-assistant/internal/model"
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

// recordingLogger counts the warnings and debug lines it receives.
type recordingLogger struct {
	mockLogger
	mu     sync.Mutex
	warns  int
	debugs int
}

func (l *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns++
}

func (l *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs++
}

func (l *recordingLogger) counts() (warns, debugs int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warns, l.debugs
}

// memStore is an in-memory Store with the same semantics as the SQL one.
type memStore struct {
	mu       sync.Mutex
	tasks    []model.DueTask
	findErr  error
	clearErr error
	finds    int
	clears   []string
	// beforeClear runs inside ClearReminder before the comparison.
	beforeClear func(id string)
}

func (s *memStore) add(id string, status model.TaskStatus, reminder *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, model.DueTask{
		Task: model.Task{
			ID:           id,
			UserID:       "u1",
			Title:        "task " + id,
			Priority:     model.TaskPriorityMedium,
			Status:       status,
			ReminderTime: reminder,
		},
		OwnerEmail: "owner@example.com",
	})
}

func (s *memStore) reminderOf(id string) *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t.ReminderTime
		}
	}
	return nil
}

func (s *memStore) setReminder(id string, at *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].ReminderTime = at
		}
	}
}

func (s *memStore) FindDue(ctx context.Context, now time.Time, after *model.DueCursor, limit int) ([]model.DueTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var due []model.DueTask
	for _, t := range s.tasks {
		if t.ReminderTime == nil || t.ReminderTime.After(now) || t.Status.IsTerminal() {
			continue
		}
		due = append(due, t)
	}
	sort.Slice(due, func(i, j int) bool { return dueBefore(due[i].Cursor(), due[j].Cursor()) })

	var out []model.DueTask
	for _, t := range due {
		if after != nil && !dueBefore(*after, t.Cursor()) {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func dueBefore(a, b model.DueCursor) bool {
	if !a.ReminderTime.Equal(b.ReminderTime) {
		return a.ReminderTime.Before(b.ReminderTime)
	}
	return a.ID < b.ID
}

func (s *memStore) ClearReminder(ctx context.Context, id string, expected time.Time) (bool, error) {
	if s.beforeClear != nil {
		s.beforeClear(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearErr != nil {
		return false, s.clearErr
	}
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.ID == id && t.ReminderTime != nil && t.ReminderTime.Equal(expected) {
			t.ReminderTime = nil
			s.clears = append(s.clears, id)
			return true, nil
		}
	}
	return false, nil
}

// mockNotifier records deliveries. fail decides per call whether to fail.
type mockNotifier struct {
	mu     sync.Mutex
	sent   []Snapshot
	calls  int
	fail   func(call int, s Snapshot) error
	onSend func(ctx context.Context, s Snapshot)
}

func (n *mockNotifier) Channel() string { return "mock" }

func (n *mockNotifier) Notify(ctx context.Context, s Snapshot) error {
	n.mu.Lock()
	n.calls++
	call := n.calls
	n.mu.Unlock()

	if n.onSend != nil {
		n.onSend(ctx, s)
	}
	if n.fail != nil {
		if err := n.fail(call, s); err != nil {
			return err
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, s)
	return nil
}

func (n *mockNotifier) sentIDs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	ids := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		ids = append(ids, s.TaskID)
	}
	return ids
}

var errSMTPDown = errors.New("smtp down")
