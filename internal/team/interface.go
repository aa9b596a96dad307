package team

import (
	"context"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (DetailOutput, error)
	ListMine(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Members
	AddMember(ctx context.Context, sc model.Scope, input AddMemberInput) (model.TeamMember, error)
	ListMembers(ctx context.Context, sc model.Scope, id string) ([]model.TeamMember, error)

	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (task.ListOutput, error)
}
