package usecase

import (
	"context"
	"strings"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
)

// Detail retrieves one task visible to the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id, true)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Only the owner may edit a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.DetailOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID, false)
	if err != nil {
		return task.DetailOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		Title:       existing.Title,
		Description: existing.Description,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
		TeamID:      existing.TeamID,
		AssignedTo:  existing.AssignedTo,
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		opt.Title = title
	}
	if input.Description != nil {
		opt.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != "" {
		if opt.Priority, err = normalizePriority(input.Priority); err != nil {
			return task.DetailOutput{}, err
		}
	}

	switch {
	case input.ClearDueDate:
		opt.DueDate = nil
	case input.DueDate != nil || input.DueText != "":
		// Unresolvable text leaves the deadline unchanged.
		if due := uc.resolveDue(ctx, input.DueDate, input.DueText); due != nil {
			opt.DueDate = due
		}
	}

	if input.TeamID != nil {
		if opt.TeamID, err = uc.checkTeam(ctx, *input.TeamID, sc.UserID); err != nil {
			return task.DetailOutput{}, err
		}
	}
	if input.AssigneeEmail != nil {
		if opt.AssignedTo, err = uc.resolveAssignee(ctx, *input.AssigneeEmail); err != nil {
			return task.DetailOutput{}, err
		}
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}
