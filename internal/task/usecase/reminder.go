package usecase

import (
	"context"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
)

// SetReminder arms the reminder of a task. The instant must carry a timezone
// and lie in the future; it is stored in UTC.
func (uc *implUseCase) SetReminder(ctx context.Context, sc model.Scope, input task.SetReminderInput) (task.DetailOutput, error) {
	if !input.Zoned {
		return task.DetailOutput{}, task.ErrReminderNoTimezone
	}
	if !input.ReminderTime.After(uc.now()) {
		return task.DetailOutput{}, task.ErrReminderInPast
	}

	existing, err := uc.getOwned(ctx, sc, input.ID, false)
	if err != nil {
		return task.DetailOutput{}, err
	}
	if existing.Status.IsTerminal() {
		return task.DetailOutput{}, task.ErrTerminalTask
	}

	at := input.ReminderTime.UTC()
	return uc.setReminder(ctx, existing.ID, &at)
}

// RemoveReminder disarms the reminder of a task.
func (uc *implUseCase) RemoveReminder(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	if _, err := uc.getOwned(ctx, sc, id, false); err != nil {
		return task.DetailOutput{}, err
	}
	return uc.setReminder(ctx, id, nil)
}

// ListReminders returns the caller's open tasks with a reminder still ahead, soonest first.
func (uc *implUseCase) ListReminders(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	now := uc.now()
	return uc.list(ctx, "ListReminders", repo.ListTasksOptions{
		UserID:        sc.UserID,
		OnlyOpen:      true,
		ReminderAfter: &now,
		Limit:         maxListLimit,
	})
}

func (uc *implUseCase) setReminder(ctx context.Context, id string, at *time.Time) (task.DetailOutput, error) {
	t, err := uc.repo.SetReminder(ctx, id, at)
	if err != nil {
		uc.l.Errorf(ctx, "uc.setReminder SetReminder: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}
