package usecase

import (
	"context"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/team"
)

// authorize loads the team and the caller's membership. manage requires an
// owner or admin role.
func (uc *implUseCase) authorize(ctx context.Context, sc model.Scope, teamID string, manage bool) (model.Team, model.TeamMember, error) {
	t, err := uc.repo.GetOneTeam(ctx, teamID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.authorize GetOneTeam: %v", err)
		return model.Team{}, model.TeamMember{}, err
	}
	if t.ID == "" {
		return model.Team{}, model.TeamMember{}, team.ErrTeamNotFound
	}

	m, err := uc.repo.GetMember(ctx, teamID, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.authorize GetMember: %v", err)
		return model.Team{}, model.TeamMember{}, err
	}
	if m.UserID == "" {
		return model.Team{}, model.TeamMember{}, team.ErrNotMember
	}
	if manage && !m.Role.CanManage() {
		return model.Team{}, model.TeamMember{}, team.ErrForbidden
	}
	return t, m, nil
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
