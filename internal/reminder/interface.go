package reminder

import (
	"context"
	"time"

	"email-task-assistant/internal/model"
)

// Store is the persistence the scheduler needs. The task repository implements it.
type Store interface {
	// FindDue returns up to limit tasks with a reminder at or before now and a
	// non-terminal status, ordered by (reminder_time, id) and starting strictly
	// after the cursor when one is given.
	FindDue(ctx context.Context, now time.Time, after *model.DueCursor, limit int) ([]model.DueTask, error)
	// ClearReminder clears the reminder of id only while it still equals expected.
	ClearReminder(ctx context.Context, id string, expected time.Time) (bool, error)
}

// Notifier delivers one reminder. A non-nil error is always a *DeliveryError.
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, s Snapshot) error
}
