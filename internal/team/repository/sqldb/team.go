package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/team/repository"
)

const teamColumns = `t.id, t.name, t.description, t.created_by, t.created_at, t.updated_at`

// CreateTeam inserts the team and its owner membership in one transaction.
func (r *implRepository) CreateTeam(ctx context.Context, opt repo.CreateTeamOptions) (model.Team, error) {
	now := r.timestamp()
	t := model.Team{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Description: opt.Description,
		CreatedBy:   opt.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO teams (id, name, description, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		t.ID, t.Name, t.Description, t.CreatedBy, t.CreatedAt, t.UpdatedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO team_members (team_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`),
		t.ID, t.CreatedBy, string(model.TeamRoleOwner), now); err != nil {
		r.l.Errorf(ctx, "%s owner: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTeam returns the zero Team when id is unknown.
func (r *implRepository) GetOneTeam(ctx context.Context, id string) (model.Team, error) {
	var t model.Team
	err := r.db.GetContext(ctx, &t, r.db.Rebind(`SELECT `+teamColumns+` FROM teams t WHERE t.id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Team{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTeam"), err)
		return model.Team{}, repo.ErrFailedToGet
	}
	normalizeTeam(&t)
	return t, nil
}

// ListTeams returns the teams userID belongs to, newest first.
func (r *implRepository) ListTeams(ctx context.Context, userID string) ([]model.Team, error) {
	query := r.db.Rebind(`
		SELECT ` + teamColumns + `
		FROM teams t JOIN team_members m ON m.team_id = t.id
		WHERE m.user_id = ?
		ORDER BY t.created_at DESC, t.id`)

	teams := []model.Team{}
	if err := r.db.SelectContext(ctx, &teams, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTeams"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range teams {
		normalizeTeam(&teams[i])
	}
	return teams, nil
}

// UpdateTeam returns the zero Team when id is unknown.
func (r *implRepository) UpdateTeam(ctx context.Context, opt repo.UpdateTeamOptions) (model.Team, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE teams SET name = ?, description = ?, updated_at = ? WHERE id = ?`),
		opt.Name, opt.Description, r.timestamp(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTeam"), err)
		return model.Team{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Team{}, nil
	}
	return r.GetOneTeam(ctx, opt.ID)
}

// DeleteTeam removes the team and its memberships and detaches its tasks.
func (r *implRepository) DeleteTeam(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteTeam"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`UPDATE tasks SET team_id = NULL WHERE team_id = ?`,
		`DELETE FROM team_members WHERE team_id = ?`,
		`DELETE FROM teams WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(stmt), id); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTeam"), err)
			return repo.ErrFailedToDelete
		}
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteTeam"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func normalizeTeam(t *model.Team) {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
}
