package email

import (
	"context"

	"email-task-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process stores the email, extracts its tasks and summarizes it.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
	// Reply drafts an answer to the email.
	Reply(ctx context.Context, sc model.Scope, input ReplyInput) (ReplyOutput, error)
}
