package reminder

import (
	"time"

	"email-task-assistant/internal/model"
)

// Snapshot is the task as it was read when its reminder fired.
type Snapshot struct {
	TaskID       string
	OwnerID      string
	OwnerEmail   string
	Title        string
	Description  string
	Priority     model.TaskPriority
	Status       model.TaskStatus
	DueDate      *time.Time
	ReminderTime time.Time
}

func newSnapshot(t model.DueTask) Snapshot {
	s := Snapshot{
		TaskID:      t.ID,
		OwnerID:     t.UserID,
		OwnerEmail:  t.OwnerEmail,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
	if t.ReminderTime != nil {
		s.ReminderTime = *t.ReminderTime
	}
	return s
}

// Options tunes the scheduler. Zero values fall back to defaults.
type Options struct {
	Interval time.Duration
	// BatchSize is the page size used to read due tasks. A cycle keeps
	// paging until the store runs out of due tasks.
	BatchSize int
}

// CycleReport summarizes one polling cycle.
type CycleReport struct {
	StartedAt time.Time
	Due       int
	Sent      int
	Failed    int
	// Raced counts sends whose conditional clear found the reminder already
	// cleared or rescheduled.
	Raced int
	// ClearFailed counts sends whose clear hit a store error; they stay due.
	ClearFailed int
	// Stopped is set when a stop request ended the cycle early.
	Stopped bool
	// Err is the store error that abandoned the cycle, if any.
	Err error
}
