package task

import (
	"time"

	"email-task-assistant/internal/model"
)

// --- UseCase Inputs ---

// CreateInput creates one task. DueText is resolved by datemath when DueDate is nil.
type CreateInput struct {
	Title         string
	Description   string
	Priority      model.TaskPriority
	DueDate       *time.Time
	DueText       string
	ReminderTime  *time.Time
	EmailID       string
	TeamID        string
	AssigneeEmail string
}

// CreateBulkInput creates the tasks extracted from one email.
type CreateBulkInput struct {
	EmailID string
	Tasks   []CreateInput
}

type ListInput struct {
	Statuses   []model.TaskStatus
	Priorities []model.TaskPriority
	DueFrom    *time.Time
	DueTo      *time.Time
	Search     string
	TeamID     string
	Limit      int
	Offset     int
}

// UpdateInput is a partial update; empty or nil fields keep their value.
type UpdateInput struct {
	ID            string
	Title         string
	Description   *string
	Priority      model.TaskPriority
	DueDate       *time.Time
	DueText       string
	ClearDueDate  bool
	TeamID        *string
	AssigneeEmail *string
}

type UpdateStatusInput struct {
	ID     string
	Status model.TaskStatus
	Note   string
}

type SetReminderInput struct {
	ID           string
	ReminderTime time.Time
	// Zoned is false when the caller sent a naive timestamp.
	Zoned bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task         model.Task
	CalendarLink string
}

type CreateBulkOutput struct {
	Tasks     []model.Task
	TaskCount int
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type HistoryOutput struct {
	Entries []model.TaskHistory
}

type AnalyticsOutput struct {
	Total          int
	Completed      int
	CompletionRate float64
	Overdue        int
	ByStatus       map[model.TaskStatus]int
	ByPriority     map[model.TaskPriority]int
}
