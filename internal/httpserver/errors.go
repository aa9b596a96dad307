package httpserver

import (
	"net/http"

	pkgErrors "email-task-assistant/pkg/errors"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
