package http

import (
	"errors"
	"net/http"

	"email-task-assistant/internal/user"
	pkgErrors "email-task-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	default:
		return err
	}
}
