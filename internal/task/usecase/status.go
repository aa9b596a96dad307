package usecase

import (
	"context"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
)

// UpdateStatus moves a task to a new status. Owners and assignees may do this.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (task.DetailOutput, error) {
	if !input.Status.IsValid() {
		return task.DetailOutput{}, task.ErrInvalidStatus
	}
	if _, err := uc.getOwned(ctx, sc, input.ID, true); err != nil {
		return task.DetailOutput{}, err
	}
	return uc.transition(ctx, sc, input.ID, input.Status, input.Note)
}

// Confirm marks a task completed.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	if _, err := uc.getOwned(ctx, sc, id, true); err != nil {
		return task.DetailOutput{}, err
	}
	return uc.transition(ctx, sc, id, model.TaskStatusCompleted, noteConfirmed)
}

// Reject soft-deletes a task. Only the owner may reject.
func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	if _, err := uc.getOwned(ctx, sc, id, false); err != nil {
		return task.DetailOutput{}, err
	}
	return uc.transition(ctx, sc, id, model.TaskStatusDeleted, noteRejected)
}

// History lists the status transitions of a task.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, id string) (task.HistoryOutput, error) {
	if _, err := uc.getOwned(ctx, sc, id, true); err != nil {
		return task.HistoryOutput{}, err
	}
	entries, err := uc.repo.ListHistory(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListHistory: %v", err)
		return task.HistoryOutput{}, err
	}
	return task.HistoryOutput{Entries: entries}, nil
}

func (uc *implUseCase) transition(ctx context.Context, sc model.Scope, id string, status model.TaskStatus, note string) (task.DetailOutput, error) {
	t, err := uc.repo.UpdateStatus(ctx, repo.UpdateStatusOptions{
		ID:      id,
		ActorID: sc.UserID,
		Status:  status,
		Note:    note,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.transition UpdateStatus: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}
