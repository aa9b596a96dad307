package http

import (
	"email-task-assistant/internal/email"
	"email-task-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc email.UseCase
}

// New creates a new HTTP handler for email processing.
func New(l log.Logger, uc email.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
