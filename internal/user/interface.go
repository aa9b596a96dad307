package user

import (
	"context"

	"email-task-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// Upsert creates the user on first sign-in and refreshes its Google tokens afterwards.
	Upsert(ctx context.Context, input UpsertInput) (model.User, error)
}
