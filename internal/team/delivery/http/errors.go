package http

import (
	"errors"
	"net/http"

	"email-task-assistant/internal/task"
	"email-task-assistant/internal/team"
	"email-task-assistant/internal/user"
	pkgErrors "email-task-assistant/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, team.ErrTeamNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "team not found")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no registered user with this email")
	case errors.Is(err, team.ErrNotMember), errors.Is(err, task.ErrNotTeamMember):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "not a member of this team")
	case errors.Is(err, team.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "insufficient team role")
	case errors.Is(err, team.ErrEmptyName), errors.Is(err, team.ErrInvalidRole), errors.Is(err, user.ErrEmptyEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
