package usecase

import (
	"email-task-assistant/internal/user/repository"
	"email-task-assistant/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new user UseCase instance.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}
