package usecase

import (
	"context"
	"strings"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
	"email-task-assistant/pkg/datemath"
)

// getOwned loads a task and checks that sc may act on it.
// Assignees pass only when allowAssignee is set.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string, allowAssignee bool) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if t.UserID == sc.UserID {
		return t, nil
	}
	if allowAssignee && t.AssignedTo != nil && *t.AssignedTo == sc.UserID {
		return t, nil
	}
	return model.Task{}, task.ErrForbidden
}

// resolveDue picks the explicit due date, falling back to free text.
// Unresolvable text yields nil.
func (uc *implUseCase) resolveDue(ctx context.Context, due *time.Time, text string) *time.Time {
	if due != nil {
		v := due.UTC()
		return &v
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	v, ok := datemath.Resolve(text, uc.now())
	if !ok {
		uc.l.Debugf(ctx, "uc.resolveDue: unresolved due text %q", text)
		return nil
	}
	return &v
}

// resolveAssignee maps an email to a user id. Empty email means unassigned.
func (uc *implUseCase) resolveAssignee(ctx context.Context, email string) (*string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, task.ErrAssigneeNotFound
	}
	return &u.ID, nil
}

// checkTeam verifies that userID belongs to teamID. Empty teamID means no team.
func (uc *implUseCase) checkTeam(ctx context.Context, teamID, userID string) (*string, error) {
	if teamID == "" {
		return nil, nil
	}
	m, err := uc.teams.GetMember(ctx, teamID, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkTeam GetMember: %v", err)
		return nil, err
	}
	if m.UserID == "" {
		return nil, task.ErrNotTeamMember
	}
	return &teamID, nil
}

func normalizePriority(p model.TaskPriority) (model.TaskPriority, error) {
	if p == "" {
		return model.TaskPriorityMedium, nil
	}
	p = model.TaskPriority(strings.ToLower(string(p)))
	if !p.IsValid() {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
