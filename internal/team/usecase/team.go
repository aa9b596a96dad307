package usecase

import (
	"context"
	"strings"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	"email-task-assistant/internal/team"
	repo "email-task-assistant/internal/team/repository"
)

// Create creates a team owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input team.CreateInput) (team.DetailOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.DetailOutput{}, team.ErrEmptyName
	}

	t, err := uc.repo.CreateTeam(ctx, repo.CreateTeamOptions{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		CreatedBy:   sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTeam: %v", err)
		return team.DetailOutput{}, err
	}

	members, err := uc.repo.ListMembers(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ListMembers: %v", err)
		return team.DetailOutput{}, err
	}
	return team.DetailOutput{Team: t, Members: members}, nil
}

func (uc *implUseCase) ListMine(ctx context.Context, sc model.Scope) (team.ListOutput, error) {
	teams, err := uc.repo.ListTeams(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMine ListTeams: %v", err)
		return team.ListOutput{}, err
	}
	return team.ListOutput{Teams: teams}, nil
}

// Detail returns the team with its members. Only members may read it.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (team.DetailOutput, error) {
	t, _, err := uc.authorize(ctx, sc, id, false)
	if err != nil {
		return team.DetailOutput{}, err
	}
	members, err := uc.repo.ListMembers(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListMembers: %v", err)
		return team.DetailOutput{}, err
	}
	return team.DetailOutput{Team: t, Members: members}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input team.UpdateInput) (team.DetailOutput, error) {
	existing, _, err := uc.authorize(ctx, sc, input.ID, true)
	if err != nil {
		return team.DetailOutput{}, err
	}

	desc := existing.Description
	if input.Description != nil {
		desc = strings.TrimSpace(*input.Description)
	}
	t, err := uc.repo.UpdateTeam(ctx, repo.UpdateTeamOptions{
		ID:          input.ID,
		Name:        coalesce(strings.TrimSpace(input.Name), existing.Name),
		Description: desc,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTeam: %v", err)
		return team.DetailOutput{}, err
	}
	if t.ID == "" {
		return team.DetailOutput{}, team.ErrTeamNotFound
	}
	return uc.Detail(ctx, sc, input.ID)
}

// Delete removes the team. Only its owner may do so; tasks are kept without a team.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	_, m, err := uc.authorize(ctx, sc, id, true)
	if err != nil {
		return err
	}
	if m.Role != model.TeamRoleOwner {
		return team.ErrForbidden
	}
	if err := uc.repo.DeleteTeam(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTeam: %v", err)
		return err
	}
	return nil
}

// AddMember adds a registered user by email. Re-adding an existing member
// returns it unchanged.
func (uc *implUseCase) AddMember(ctx context.Context, sc model.Scope, input team.AddMemberInput) (model.TeamMember, error) {
	role := input.Role
	if role == "" {
		role = model.TeamRoleMember
	}
	switch role {
	case model.TeamRoleOwner, model.TeamRoleAdmin, model.TeamRoleMember:
	default:
		return model.TeamMember{}, team.ErrInvalidRole
	}

	_, caller, err := uc.authorize(ctx, sc, input.TeamID, true)
	if err != nil {
		return model.TeamMember{}, err
	}
	if role == model.TeamRoleOwner && caller.Role != model.TeamRoleOwner {
		return model.TeamMember{}, team.ErrForbidden
	}

	u, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return model.TeamMember{}, err
	}

	m, err := uc.repo.AddMember(ctx, repo.AddMemberOptions{TeamID: input.TeamID, UserID: u.ID, Role: role})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddMember AddMember: %v", err)
		return model.TeamMember{}, err
	}
	return m, nil
}

func (uc *implUseCase) ListMembers(ctx context.Context, sc model.Scope, id string) ([]model.TeamMember, error) {
	if _, _, err := uc.authorize(ctx, sc, id, false); err != nil {
		return nil, err
	}
	members, err := uc.repo.ListMembers(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMembers ListMembers: %v", err)
		return nil, err
	}
	return members, nil
}

// ListTasks lists the team's tasks through the task use case, which checks membership again.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input team.ListTasksInput) (task.ListOutput, error) {
	if _, _, err := uc.authorize(ctx, sc, input.TeamID, false); err != nil {
		return task.ListOutput{}, err
	}
	return uc.tasks.List(ctx, sc, task.ListInput{
		TeamID: input.TeamID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}
