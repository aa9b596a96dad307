package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/team/repository"
)

const memberColumns = `m.team_id, m.user_id, COALESCE(u.email, '') AS email, m.role, m.joined_at`

func (r *implRepository) AddMember(ctx context.Context, opt repo.AddMemberOptions) (model.TeamMember, error) {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO team_members (team_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (team_id, user_id) DO NOTHING`),
		opt.TeamID, opt.UserID, string(opt.Role), r.timestamp())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddMember"), err)
		return model.TeamMember{}, repo.ErrFailedToInsert
	}
	return r.GetMember(ctx, opt.TeamID, opt.UserID)
}

func (r *implRepository) GetMember(ctx context.Context, teamID, userID string) (model.TeamMember, error) {
	query := r.db.Rebind(`
		SELECT ` + memberColumns + `
		FROM team_members m LEFT JOIN users u ON u.id = m.user_id
		WHERE m.team_id = ? AND m.user_id = ?`)

	var m model.TeamMember
	err := r.db.GetContext(ctx, &m, query, teamID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TeamMember{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMember"), err)
		return model.TeamMember{}, repo.ErrFailedToGet
	}
	m.JoinedAt = m.JoinedAt.UTC()
	return m, nil
}

// ListMembers returns members in join order.
func (r *implRepository) ListMembers(ctx context.Context, teamID string) ([]model.TeamMember, error) {
	query := r.db.Rebind(`
		SELECT ` + memberColumns + `
		FROM team_members m LEFT JOIN users u ON u.id = m.user_id
		WHERE m.team_id = ?
		ORDER BY m.joined_at, m.user_id`)

	members := []model.TeamMember{}
	if err := r.db.SelectContext(ctx, &members, query, teamID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range members {
		members[i].JoinedAt = members[i].JoinedAt.UTC()
	}
	return members, nil
}
