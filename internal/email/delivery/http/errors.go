package http

import (
	"errors"
	"net/http"

	"email-task-assistant/internal/email"
	pkgErrors "email-task-assistant/pkg/errors"
)

var errOtherUser = pkgErrors.NewHTTPError(http.StatusForbidden, "not authorized to create tasks for this user")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, email.ErrEmptyContent),
		errors.Is(err, email.ErrEmptyGmailID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, email.ErrLLMUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, email.ErrReplyFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return err
	}
}
