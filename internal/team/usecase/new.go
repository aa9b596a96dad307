package usecase

import (
	"email-task-assistant/internal/task"
	"email-task-assistant/internal/team/repository"
	"email-task-assistant/internal/user"
	"email-task-assistant/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	users user.UseCase
	tasks task.UseCase
}

// New creates a new team UseCase instance.
func New(l log.Logger, repo repository.Repository, users user.UseCase, tasks task.UseCase) *implUseCase {
	return &implUseCase{l: l, repo: repo, users: users, tasks: tasks}
}
