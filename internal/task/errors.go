package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrForbidden          = errors.New("task belongs to another user")
	ErrEmptyTitle         = errors.New("task title is empty")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrReminderInPast     = errors.New("reminder time must be in the future")
	ErrReminderNoTimezone = errors.New("reminder time must carry a timezone")
	ErrTerminalTask       = errors.New("task is already completed or deleted")
	ErrAssigneeNotFound   = errors.New("assignee not found")
	ErrNotTeamMember      = errors.New("user is not a member of the team")
)
