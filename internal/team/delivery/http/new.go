package http

import (
	"email-task-assistant/internal/team"
	"email-task-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc team.UseCase
}

// New creates a new HTTP handler for the team domain.
func New(l log.Logger, uc team.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
