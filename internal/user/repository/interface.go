package repository

import (
	"context"

	"email-task-assistant/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (model.User, error)
}
