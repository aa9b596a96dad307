package http

import (
	"errors"
	"net/http"

	"email-task-assistant/internal/auth"
	pkgErrors "email-task-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCredential),
		errors.Is(err, auth.ErrExchangeFailed),
		errors.Is(err, auth.ErrProfileFailed):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnverifiedEmail):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return err
	}
}
