package repository

import (
	"context"
	"time"

	"email-task-assistant/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	ReminderRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) (model.Task, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	ListHistory(ctx context.Context, taskID string) ([]model.TaskHistory, error)
	Stats(ctx context.Context, opt StatsOptions) (Stats, error)
}

// ReminderRepository holds the reminder columns of a Task.
type ReminderRepository interface {
	// SetReminder arms (or with nil disarms) the reminder of a task.
	SetReminder(ctx context.Context, id string, at *time.Time) (model.Task, error)

	// FindDue returns up to limit non-terminal tasks whose reminder is at or before now.
	// Pages continue strictly after the cursor in (reminder_time, id) order.
	FindDue(ctx context.Context, now time.Time, after *model.DueCursor, limit int) ([]model.DueTask, error)

	// ClearReminder clears the reminder only if it still equals expected.
	// It reports whether the row was changed.
	ClearReminder(ctx context.Context, id string, expected time.Time) (bool, error)
}
