package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "email-task-assistant/internal/email/repository"
	"email-task-assistant/internal/model"
)

const emailColumns = `id, user_id, gmail_id, thread_id, subject, sender, content,
	summary, processed_at, created_at`

func (r *implRepository) UpsertEmail(ctx context.Context, opt repo.UpsertEmailOptions) (model.Email, error) {
	now := r.now().UTC().Truncate(time.Microsecond)

	query := r.db.Rebind(`
		INSERT INTO emails (id, user_id, gmail_id, thread_id, subject, sender, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, gmail_id) DO UPDATE SET
			thread_id = CASE WHEN excluded.thread_id = '' THEN emails.thread_id ELSE excluded.thread_id END,
			subject = CASE WHEN excluded.subject = '' THEN emails.subject ELSE excluded.subject END,
			sender = CASE WHEN excluded.sender = '' THEN emails.sender ELSE excluded.sender END,
			content = excluded.content`)

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.GmailID, opt.ThreadID, opt.Subject, opt.Sender, opt.Content, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertEmail"), err)
		return model.Email{}, repo.ErrFailedToUpsert
	}
	return r.GetOneEmail(ctx, repo.GetOneEmailOptions{UserID: opt.UserID, GmailID: opt.GmailID})
}

func (r *implRepository) GetOneEmail(ctx context.Context, opt repo.GetOneEmailOptions) (model.Email, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.GmailID != "" {
		conds = append(conds, "gmail_id = ?")
		args = append(args, opt.GmailID)
	}
	if len(conds) == 0 {
		return model.Email{}, nil
	}

	query := r.db.Rebind("SELECT " + emailColumns + " FROM emails WHERE " + strings.Join(conds, " AND ") + " LIMIT 1")

	var e model.Email
	err := r.db.GetContext(ctx, &e, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Email{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEmail"), err)
		return model.Email{}, repo.ErrFailedToGet
	}
	e.CreatedAt = e.CreatedAt.UTC()
	if e.ProcessedAt != nil {
		v := e.ProcessedAt.UTC()
		e.ProcessedAt = &v
	}
	return e, nil
}

func (r *implRepository) MarkProcessed(ctx context.Context, id, summary string) (model.Email, error) {
	now := r.now().UTC().Truncate(time.Microsecond)

	query := r.db.Rebind(`UPDATE emails SET summary = ?, processed_at = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, summary, now, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkProcessed"), err)
		return model.Email{}, repo.ErrFailedToUpdate
	}
	return r.GetOneEmail(ctx, repo.GetOneEmailOptions{ID: id})
}
