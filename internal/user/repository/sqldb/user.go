package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/user/repository"
)

const userColumns = `id, email, name, google_access_token, google_refresh_token,
	google_token_expiry, created_at, updated_at`

// GetOneUser returns the zero User when nothing matches.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conds = append(conds, "email = ?")
		args = append(args, strings.ToLower(opt.Email))
	}
	if len(conds) == 0 {
		return model.User{}, nil
	}

	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE " + strings.Join(conds, " AND ") + " LIMIT 1")

	var u model.User
	err := r.db.GetContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	normalizeUser(&u)
	return u, nil
}

// UpsertUser inserts the user on first sign-in and refreshes its tokens afterwards.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (model.User, error) {
	now := r.now().UTC().Truncate(time.Microsecond)
	var expiry *time.Time
	if opt.TokenExpiry != nil {
		v := opt.TokenExpiry.UTC().Truncate(time.Microsecond)
		expiry = &v
	}
	email := strings.ToLower(strings.TrimSpace(opt.Email))

	query := r.db.Rebind(`
		INSERT INTO users (id, email, name, google_access_token, google_refresh_token,
			google_token_expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			name = CASE WHEN excluded.name = '' THEN users.name ELSE excluded.name END,
			google_access_token = excluded.google_access_token,
			google_refresh_token = CASE WHEN excluded.google_refresh_token = ''
				THEN users.google_refresh_token ELSE excluded.google_refresh_token END,
			google_token_expiry = excluded.google_token_expiry,
			updated_at = excluded.updated_at`)

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), email, opt.Name, opt.AccessToken, opt.RefreshToken, expiry, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUser"), err)
		return model.User{}, repo.ErrFailedToUpsert
	}
	return r.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
}

func normalizeUser(u *model.User) {
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	if u.GoogleTokenExpiry != nil {
		v := u.GoogleTokenExpiry.UTC()
		u.GoogleTokenExpiry = &v
	}
}
