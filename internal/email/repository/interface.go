package repository

import (
	"context"

	"email-task-assistant/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// UpsertEmail stores the email once per (user, gmail id); a resubmission refreshes its content.
	UpsertEmail(ctx context.Context, opt UpsertEmailOptions) (model.Email, error)
	// GetOneEmail returns the zero Email when nothing matches.
	GetOneEmail(ctx context.Context, opt GetOneEmailOptions) (model.Email, error)
	// MarkProcessed records the summary and the processing time.
	MarkProcessed(ctx context.Context, id, summary string) (model.Email, error)
}
