package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/pkg/log"
)

// Scheduler polls the store for due reminders and delivers them one by one.
type Scheduler struct {
	l        log.Logger
	store    Store
	notifier Notifier
	opt      Options
	now      func() time.Time

	mu sync.Mutex
	// quiet holds, per task, the reminder instant whose permanent failure
	// was already logged at warn level.
	quiet map[string]time.Time
}

// New creates a Scheduler. Zero options fall back to the package defaults.
func New(l log.Logger, store Store, notifier Notifier, opt Options) *Scheduler {
	if opt.Interval <= 0 {
		opt.Interval = DefaultInterval
	}
	if opt.BatchSize <= 0 {
		opt.BatchSize = DefaultBatchSize
	}
	return &Scheduler{
		l:        l,
		store:    store,
		notifier: notifier,
		opt:      opt,
		now:      time.Now,
		quiet:    make(map[string]time.Time),
	}
}

// Run executes a cycle immediately and then once per interval until ctx is
// cancelled. A failing cycle never stops the loop.
func (s *Scheduler) Run(ctx context.Context) {
	s.l.Infof(ctx, "reminder.Scheduler: started channel=%s interval=%s batch=%d",
		s.notifier.Channel(), s.opt.Interval, s.opt.BatchSize)

	ticker := time.NewTicker(s.opt.Interval)
	defer ticker.Stop()

	for {
		s.RunCycle(ctx, s.now())

		select {
		case <-ctx.Done():
			s.l.Infof(context.WithoutCancel(ctx), "reminder.Scheduler: stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunCycle delivers every reminder due at now, reading them in pages of
// BatchSize. A stop request is honored between tasks; a send and its clear
// always finish together.
func (s *Scheduler) RunCycle(ctx context.Context, now time.Time) CycleReport {
	report := CycleReport{StartedAt: now}
	seen := make(map[string]struct{})
	var after *model.DueCursor

pages:
	for {
		if ctx.Err() != nil {
			report.Stopped = true
			break
		}

		page, err := s.store.FindDue(ctx, now, after, s.opt.BatchSize)
		if err != nil {
			s.l.Errorf(ctx, "reminder.RunCycle FindDue: %v", err)
			report.Err = err
			break
		}
		report.Due += len(page)

		for _, t := range page {
			if ctx.Err() != nil {
				report.Stopped = true
				break pages
			}
			seen[t.ID] = struct{}{}
			s.deliver(context.WithoutCancel(ctx), t, &report)
		}

		if len(page) < s.opt.BatchSize {
			break
		}
		last := page[len(page)-1].Cursor()
		after = &last
	}

	if !report.Stopped && report.Err == nil {
		s.forgetUnseen(seen)
	}
	if report.Due > 0 {
		s.l.Infof(ctx, "reminder.RunCycle: due=%d sent=%d failed=%d raced=%d clear_failed=%d stopped=%v",
			report.Due, report.Sent, report.Failed, report.Raced, report.ClearFailed, report.Stopped)
	}
	return report
}

func (s *Scheduler) deliver(ctx context.Context, t model.DueTask, report *CycleReport) {
	if t.ReminderTime == nil {
		return
	}
	expected := *t.ReminderTime

	if err := s.notify(ctx, newSnapshot(t)); err != nil {
		report.Failed++
		s.logFailure(ctx, t.ID, expected, err)
		return
	}
	report.Sent++
	s.unquiet(t.ID)

	cleared, err := s.store.ClearReminder(ctx, t.ID, expected)
	switch {
	case err != nil:
		report.ClearFailed++
		s.l.Errorf(ctx, "reminder.deliver ClearReminder: task=%s: %v", t.ID, err)
	case !cleared:
		report.Raced++
		s.l.Infof(ctx, "reminder.deliver: task=%s reminder changed during delivery, left as is", t.ID)
	}
}

// logFailure warns on every transient failure, but only once per reminder
// instant for a permanent one. Repeats of a permanent failure go to debug.
func (s *Scheduler) logFailure(ctx context.Context, id string, expected time.Time, err error) {
	var de *DeliveryError
	if !errors.As(err, &de) || !de.Permanent() {
		s.l.Warnf(ctx, "reminder.deliver: task=%s stays due: %v", id, err)
		return
	}

	s.mu.Lock()
	prev, logged := s.quiet[id]
	repeat := logged && prev.Equal(expected)
	s.quiet[id] = expected
	s.mu.Unlock()

	if repeat {
		s.l.Debugf(ctx, "reminder.deliver: task=%s still failing: %v", id, err)
		return
	}
	s.l.Warnf(ctx, "reminder.deliver: task=%s stays due until it is fixed: %v", id, err)
}

func (s *Scheduler) unquiet(id string) {
	s.mu.Lock()
	delete(s.quiet, id)
	s.mu.Unlock()
}

// forgetUnseen drops entries for tasks that are no longer due.
func (s *Scheduler) forgetUnseen(seen map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.quiet {
		if _, ok := seen[id]; !ok {
			delete(s.quiet, id)
		}
	}
}

// notify calls the notifier and converts panics and foreign errors into a *DeliveryError.
func (s *Scheduler) notify(ctx context.Context, snap Snapshot) (err error) {
	channel := s.notifier.Channel()
	defer func() {
		if r := recover(); r != nil {
			err = newDeliveryError(channel, ReasonPanic, fmt.Errorf("%v", r))
		}
	}()

	if err := s.notifier.Notify(ctx, snap); err != nil {
		return asDeliveryError(channel, err)
	}
	return nil
}
