package reminder

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"email-task-assistant/internal/model"
)

var cycleNow = time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := cycleNow.Add(d)
	return &t
}

func newTestScheduler(store Store, n Notifier) *Scheduler {
	return New(&mockLogger{}, store, n, Options{Interval: time.Hour})
}

func TestRunCycle(t *testing.T) {
	t.Run("Delivers only due non-terminal tasks", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		store.add("b", model.TaskStatusCompleted, at(-time.Minute))
		store.add("c", model.TaskStatusInProgress, at(0))
		store.add("d", model.TaskStatusPending, at(time.Minute))
		store.add("e", model.TaskStatusDeleted, at(-time.Hour))
		n := &mockNotifier{}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if got, want := n.sentIDs(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
			t.Errorf("sent = %v, want %v", got, want)
		}
		if report.Due != 2 || report.Sent != 2 || report.Failed != 0 {
			t.Errorf("report = %+v", report)
		}
		if store.reminderOf("a") != nil || store.reminderOf("c") != nil {
			t.Error("delivered reminders should be cleared")
		}
		if store.reminderOf("b") == nil || store.reminderOf("d") == nil || store.reminderOf("e") == nil {
			t.Error("undelivered reminders must be left untouched")
		}
	})

	t.Run("Snapshot carries task fields", func(t *testing.T) {
		store := &memStore{}
		due := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		store.tasks[0].DueDate = &due
		store.tasks[0].Description = "quarterly numbers"
		n := &mockNotifier{}

		newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if len(n.sent) != 1 {
			t.Fatalf("sent %d, want 1", len(n.sent))
		}
		s := n.sent[0]
		if s.OwnerEmail != "owner@example.com" || s.OwnerID != "u1" || s.Description != "quarterly numbers" {
			t.Errorf("snapshot = %+v", s)
		}
		if s.DueDate == nil || !s.DueDate.Equal(due) || !s.ReminderTime.Equal(*at(-time.Minute)) {
			t.Errorf("snapshot times = %v / %v", s.DueDate, s.ReminderTime)
		}
	})

	t.Run("Failed send leaves task due", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		store.add("b", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{fail: func(call int, s Snapshot) error {
			if s.TaskID == "a" {
				return newDeliveryError("mock", ReasonTransport, errSMTPDown)
			}
			return nil
		}}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if report.Sent != 1 || report.Failed != 1 {
			t.Errorf("report = %+v", report)
		}
		if store.reminderOf("a") == nil {
			t.Error("failed reminder must stay armed")
		}
		if store.reminderOf("b") != nil {
			t.Error("a failure must not block later tasks")
		}
	})

	t.Run("Retries on next cycle", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{fail: func(call int, s Snapshot) error {
			if call == 1 {
				return errSMTPDown
			}
			return nil
		}}
		s := newTestScheduler(store, n)

		first := s.RunCycle(context.Background(), cycleNow)
		second := s.RunCycle(context.Background(), cycleNow.Add(DefaultInterval))
		third := s.RunCycle(context.Background(), cycleNow.Add(2*DefaultInterval))

		if first.Failed != 1 || second.Sent != 1 || third.Due != 0 {
			t.Errorf("reports = %+v / %+v / %+v", first, second, third)
		}
		if len(n.sent) != 1 {
			t.Errorf("notifications = %d, want exactly 1", len(n.sent))
		}
		if store.reminderOf("a") != nil {
			t.Error("reminder should be cleared after the successful retry")
		}
	})

	t.Run("Store outage abandons cycle", func(t *testing.T) {
		store := &memStore{findErr: errors.New("connection refused")}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if report.Err == nil {
			t.Fatal("expected store error in report")
		}
		if n.calls != 0 {
			t.Errorf("notifier called %d times during outage", n.calls)
		}

		store.findErr = nil
		report = newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)
		if report.Sent != 1 {
			t.Errorf("recovered cycle report = %+v", report)
		}
	})

	t.Run("Clear error keeps task due", func(t *testing.T) {
		store := &memStore{clearErr: errors.New("database is locked")}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if report.Sent != 1 || report.ClearFailed != 1 {
			t.Errorf("report = %+v", report)
		}
		if store.reminderOf("a") == nil {
			t.Error("reminder must stay armed when the clear fails")
		}
	})

	t.Run("Rescheduled during send is not cleared", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		later := cycleNow.Add(24 * time.Hour)
		n := &mockNotifier{onSend: func(ctx context.Context, s Snapshot) {
			store.setReminder(s.TaskID, &later)
		}}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if report.Sent != 1 || report.Raced != 1 {
			t.Errorf("report = %+v", report)
		}
		if got := store.reminderOf("a"); got == nil || !got.Equal(later) {
			t.Errorf("reminder = %v, want rescheduled %v", got, later)
		}
	})

	t.Run("Cleared concurrently is benign", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		store.beforeClear = func(id string) { store.setReminder(id, nil) }
		n := &mockNotifier{}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if report.Raced != 1 || report.ClearFailed != 0 || report.Err != nil {
			t.Errorf("report = %+v", report)
		}
	})

	t.Run("Notifier panic becomes delivery error", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{onSend: func(ctx context.Context, s Snapshot) { panic("boom") }}

		report := newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if report.Failed != 1 {
			t.Errorf("report = %+v", report)
		}
		if store.reminderOf("a") == nil {
			t.Error("reminder must stay armed after a panic")
		}
	})

	t.Run("Batch size pages through every due task", func(t *testing.T) {
		store := &memStore{}
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			store.add(id, model.TaskStatusPending, at(-time.Minute))
		}
		n := &mockNotifier{}
		s := New(&mockLogger{}, store, n, Options{BatchSize: 2})

		report := s.RunCycle(context.Background(), cycleNow)

		if report.Due != 5 || report.Sent != 5 {
			t.Errorf("report = %+v", report)
		}
		if got, want := n.sentIDs(), []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(got, want) {
			t.Errorf("sent = %v, want %v", got, want)
		}
		if store.finds != 3 {
			t.Errorf("finds = %d, want 3 pages", store.finds)
		}
	})

	t.Run("Failing reminders do not starve later ones", func(t *testing.T) {
		store := &memStore{}
		store.add("bad1", model.TaskStatusPending, at(-3*time.Hour))
		store.add("bad2", model.TaskStatusPending, at(-2*time.Hour))
		store.add("good", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{fail: func(call int, s Snapshot) error {
			if s.TaskID != "good" {
				return newDeliveryError("mock", ReasonNoRecipient, errors.New("owner has no address"))
			}
			return nil
		}}
		s := New(&mockLogger{}, store, n, Options{BatchSize: 2})

		report := s.RunCycle(context.Background(), cycleNow)

		if report.Due != 3 || report.Failed != 2 || report.Sent != 1 {
			t.Errorf("report = %+v", report)
		}
		if store.reminderOf("good") != nil {
			t.Error("good reminder should be delivered and cleared in the first cycle")
		}
		if store.reminderOf("bad1") == nil || store.reminderOf("bad2") == nil {
			t.Error("failing reminders must stay armed")
		}
	})

	t.Run("Page read error abandons the rest of the cycle", func(t *testing.T) {
		store := &memStore{}
		for _, id := range []string{"a", "b", "c"} {
			store.add(id, model.TaskStatusPending, at(-time.Minute))
		}
		n := &mockNotifier{onSend: func(ctx context.Context, s Snapshot) {
			if s.TaskID == "b" {
				store.mu.Lock()
				store.findErr = errors.New("connection reset")
				store.mu.Unlock()
			}
		}}
		s := New(&mockLogger{}, store, n, Options{BatchSize: 2})

		report := s.RunCycle(context.Background(), cycleNow)

		if report.Err == nil || report.Sent != 2 {
			t.Errorf("report = %+v", report)
		}
		if store.reminderOf("c") == nil {
			t.Error("task on the unread page must stay due")
		}
	})

	t.Run("Send has no deadline of its own", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		hasDeadline := true
		n := &mockNotifier{onSend: func(ctx context.Context, s Snapshot) {
			_, hasDeadline = ctx.Deadline()
		}}

		newTestScheduler(store, n).RunCycle(context.Background(), cycleNow)

		if hasDeadline {
			t.Error("notification send should not be bounded by a deadline")
		}
	})
}

func TestRunCycleFailureLogging(t *testing.T) {
	t.Run("Permanent failure warns once per reminder", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{fail: func(call int, s Snapshot) error {
			return newDeliveryError("mock", ReasonNoRecipient, errors.New("owner has no address"))
		}}
		l := &recordingLogger{}
		s := New(l, store, n, Options{Interval: time.Hour})

		for i := 0; i < 3; i++ {
			s.RunCycle(context.Background(), cycleNow.Add(time.Duration(i)*DefaultInterval))
		}
		if warns, debugs := l.counts(); warns != 1 || debugs != 2 {
			t.Errorf("warns = %d, debugs = %d, want 1 and 2", warns, debugs)
		}

		// A new reminder instant is a new reminder and warns again.
		store.setReminder("a", at(0))
		s.RunCycle(context.Background(), cycleNow.Add(time.Hour))
		if warns, _ := l.counts(); warns != 2 {
			t.Errorf("warns after reschedule = %d, want 2", warns)
		}
	})

	t.Run("Transient failure warns every cycle", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{fail: func(call int, s Snapshot) error { return errSMTPDown }}
		l := &recordingLogger{}
		s := New(l, store, n, Options{Interval: time.Hour})

		for i := 0; i < 3; i++ {
			s.RunCycle(context.Background(), cycleNow)
		}
		if warns, debugs := l.counts(); warns != 3 || debugs != 0 {
			t.Errorf("warns = %d, debugs = %d, want 3 and 0", warns, debugs)
		}
	})

	t.Run("Task no longer due is forgotten", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		n := &mockNotifier{fail: func(call int, s Snapshot) error {
			return newDeliveryError("mock", ReasonRender, errors.New("bad template"))
		}}
		s := New(&recordingLogger{}, store, n, Options{Interval: time.Hour})

		s.RunCycle(context.Background(), cycleNow)
		if len(s.quiet) != 1 {
			t.Fatalf("quiet = %v, want one entry", s.quiet)
		}
		store.setReminder("a", nil)
		s.RunCycle(context.Background(), cycleNow)
		if len(s.quiet) != 0 {
			t.Errorf("quiet = %v, want empty", s.quiet)
		}
	})
}

func TestRunCycleStop(t *testing.T) {
	t.Run("In-flight send and clear complete", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		store.add("b", model.TaskStatusPending, at(-time.Minute))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var sendCtxErr error
		n := &mockNotifier{onSend: func(sendCtx context.Context, s Snapshot) {
			cancel()
			sendCtxErr = sendCtx.Err()
		}}

		report := newTestScheduler(store, n).RunCycle(ctx, cycleNow)

		if !report.Stopped {
			t.Error("report should be marked stopped")
		}
		if sendCtxErr != nil {
			t.Errorf("in-flight send saw cancellation: %v", sendCtxErr)
		}
		if got, want := n.sentIDs(), []string{"a"}; !reflect.DeepEqual(got, want) {
			t.Errorf("sent = %v, want %v", got, want)
		}
		if store.reminderOf("a") != nil {
			t.Error("in-flight delivery should have been cleared")
		}
		if store.reminderOf("b") == nil {
			t.Error("task after the stop must stay due")
		}
	})

	t.Run("Stopped before start", func(t *testing.T) {
		store := &memStore{}
		store.add("a", model.TaskStatusPending, at(-time.Minute))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report := newTestScheduler(store, &mockNotifier{}).RunCycle(ctx, cycleNow)

		if !report.Stopped || store.finds != 0 {
			t.Errorf("report = %+v, finds = %d", report, store.finds)
		}
	})
}

func TestRun(t *testing.T) {
	store := &memStore{}
	store.add("a", model.TaskStatusPending, at(-time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := &mockNotifier{onSend: func(context.Context, Snapshot) { cancel() }}

	s := newTestScheduler(store, n)
	s.now = func() time.Time { return cycleNow }

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if len(n.sentIDs()) != 1 {
		t.Errorf("sent %d, want 1 from the immediate first cycle", len(n.sentIDs()))
	}
	if store.reminderOf("a") != nil {
		t.Error("reminder should be cleared")
	}
}

func TestDeliveryError(t *testing.T) {
	err := asDeliveryError("smtp", errSMTPDown)
	if err.Reason != ReasonTransport || !errors.Is(err, errSMTPDown) {
		t.Errorf("asDeliveryError = %+v", err)
	}

	typed := newDeliveryError("gmail", ReasonRejected, errSMTPDown)
	if got := asDeliveryError("smtp", typed); got != typed {
		t.Error("typed errors should pass through unchanged")
	}
	if typed.Error() == "" {
		t.Error("empty error message")
	}

	tcs := map[Reason]bool{
		ReasonNoRecipient: true,
		ReasonRender:      true,
		ReasonRejected:    true,
		ReasonTransport:   false,
		ReasonPanic:       false,
	}
	for reason, want := range tcs {
		t.Run(string(reason), func(t *testing.T) {
			if got := newDeliveryError("smtp", reason, errSMTPDown).Permanent(); got != want {
				t.Errorf("Permanent() = %v, want %v", got, want)
			}
		})
	}
}
