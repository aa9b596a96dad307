package usecase

import (
	"context"
	"time"

	"email-task-assistant/internal/email/repository"
	"email-task-assistant/internal/task"
	"email-task-assistant/pkg/llmprovider"
	pkgLog "email-task-assistant/pkg/log"
)

// LLM generates completions. *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	tasks task.UseCase
	llm   LLM
	now   func() time.Time
}

// New creates the email UseCase. llm may be nil, in which case emails are stored
// without extracted tasks or summaries and replies are unavailable.
func New(l pkgLog.Logger, repo repository.Repository, tasks task.UseCase, llm LLM) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		tasks: tasks,
		llm:   llm,
		now:   time.Now,
	}
}
