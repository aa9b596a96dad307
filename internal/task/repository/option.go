package repository

import (
	"time"

	"email-task-assistant/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID       string
	EmailID      *string
	TeamID       *string
	AssignedTo   *string
	Title        string
	Description  string
	Priority     model.TaskPriority
	DueDate      *time.Time
	ReminderTime *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// UserID matches the owner or the assignee. Deleted tasks are skipped unless
// Statuses asks for them.
type ListTasksOptions struct {
	UserID        string
	TeamID        string
	Statuses      []model.TaskStatus
	Priorities    []model.TaskPriority
	DueFrom       *time.Time
	DueTo         *time.Time
	Search        string
	OnlyOpen      bool
	ReminderAfter *time.Time
	Limit         int
	Offset        int
}

// UpdateTaskOptions replaces the editable fields of a Task.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description string
	Priority    model.TaskPriority
	DueDate     *time.Time
	TeamID      *string
	AssignedTo  *string
}

// UpdateStatusOptions moves a Task to Status and appends a history entry.
type UpdateStatusOptions struct {
	ID      string
	ActorID string
	Status  model.TaskStatus
	Note    string
}

// StatsOptions scopes aggregate counters to one user.
type StatsOptions struct {
	UserID string
	Now    time.Time
}

// Stats are aggregate counters over a user's tasks.
type Stats struct {
	ByStatus   map[model.TaskStatus]int
	ByPriority map[model.TaskPriority]int
	Overdue    int
}
