package usecase

import (
	"context"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
)

// List returns the caller's tasks, or a team's tasks when TeamID is set and the caller is a member.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	for _, s := range input.Statuses {
		if !s.IsValid() {
			return task.ListOutput{}, task.ErrInvalidStatus
		}
	}
	for _, p := range input.Priorities {
		if !p.IsValid() {
			return task.ListOutput{}, task.ErrInvalidPriority
		}
	}

	opt := repo.ListTasksOptions{
		UserID:     sc.UserID,
		Statuses:   input.Statuses,
		Priorities: input.Priorities,
		DueFrom:    input.DueFrom,
		DueTo:      input.DueTo,
		Search:     input.Search,
		Limit:      clampLimit(input.Limit),
		Offset:     max(input.Offset, 0),
	}
	if input.TeamID != "" {
		if _, err := uc.checkTeam(ctx, input.TeamID, sc.UserID); err != nil {
			return task.ListOutput{}, err
		}
		opt.UserID = ""
		opt.TeamID = input.TeamID
	}

	return uc.list(ctx, "List", opt)
}

func (uc *implUseCase) list(ctx context.Context, method string, opt repo.ListTasksOptions) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s ListTasks: %v", method, err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  opt.Limit,
		Offset: opt.Offset,
	}, nil
}
