package http

import (
	"errors"
	"net/http"

	"email-task-assistant/internal/task"
	pkgErrors "email-task-assistant/pkg/errors"
)

var (
	errInvalidID        = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidReminder  = pkgErrors.NewHTTPError(http.StatusBadRequest, "reminder_time must be an ISO 8601 timestamp")
	errInvalidDateRange = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_from and due_to must be ISO 8601 timestamps")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged and rendered as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "not authorized to access this task")
	case errors.Is(err, task.ErrNotTeamMember):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "not a member of this team")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrReminderInPast),
		errors.Is(err, task.ErrReminderNoTimezone),
		errors.Is(err, task.ErrTerminalTask):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrAssigneeNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "assignee not found")
	default:
		return err
	}
}
