package task

import (
	"context"

	"email-task-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)

	// Status transitions. Each one records a history entry.
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (DetailOutput, error)
	Confirm(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Reject(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	History(ctx context.Context, sc model.Scope, id string) (HistoryOutput, error)

	// Reminders
	SetReminder(ctx context.Context, sc model.Scope, input SetReminderInput) (DetailOutput, error)
	RemoveReminder(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	ListReminders(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Views
	Upcoming(ctx context.Context, sc model.Scope, days int) (ListOutput, error)
	Overdue(ctx context.Context, sc model.Scope) (ListOutput, error)
	Analytics(ctx context.Context, sc model.Scope) (AnalyticsOutput, error)
}
