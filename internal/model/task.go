package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDeleted    TaskStatus = "deleted"
)

// IsTerminal reports whether no further reminders may be delivered for the status.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusDeleted
}

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusDeleted:
		return true
	}
	return false
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// IsValid reports whether p is a known priority.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// Task is a unit of work extracted from an email or created by hand.
// DueDate and ReminderTime are always UTC.
type Task struct {
	ID              string       `db:"id"`
	UserID          string       `db:"user_id"`
	EmailID         *string      `db:"email_id"`
	TeamID          *string      `db:"team_id"`
	AssignedTo      *string      `db:"assigned_to"`
	Title           string       `db:"title"`
	Description     string       `db:"description"`
	Priority        TaskPriority `db:"priority"`
	Status          TaskStatus   `db:"status"`
	DueDate         *time.Time   `db:"due_date"`
	ReminderTime    *time.Time   `db:"reminder_time"`
	CompletedAt     *time.Time   `db:"completed_at"`
	CalendarEventID string       `db:"calendar_event_id"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

// DueTask is a task whose reminder has fired, joined with its owner's address.
type DueTask struct {
	Task
	OwnerEmail string `db:"owner_email"`
}

// DueCursor is the position of the last due task read, in
// (reminder_time, id) order. The next page starts strictly after it.
type DueCursor struct {
	ReminderTime time.Time
	ID           string
}

// Cursor returns the position of t in the due ordering.
func (t DueTask) Cursor() DueCursor {
	c := DueCursor{ID: t.ID}
	if t.ReminderTime != nil {
		c.ReminderTime = *t.ReminderTime
	}
	return c
}

// TaskHistory records one status transition.
type TaskHistory struct {
	ID         string     `db:"id"`
	TaskID     string     `db:"task_id"`
	UserID     string     `db:"user_id"`
	FromStatus TaskStatus `db:"from_status"`
	ToStatus   TaskStatus `db:"to_status"`
	Note       string     `db:"note"`
	CreatedAt  time.Time  `db:"created_at"`
}
