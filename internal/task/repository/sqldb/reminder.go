package sqldb

import (
	"context"
	"fmt"
	"time"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/task/repository"
)

// SetReminder arms the reminder of a task, or disarms it when at is nil.
func (r *implRepository) SetReminder(ctx context.Context, id string, at *time.Time) (model.Task, error) {
	query := r.db.Rebind(`UPDATE tasks SET reminder_time = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, dbTimePtr(at), dbTime(r.now()), id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetReminder"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
}

// FindDue returns tasks whose reminder instant is at or before now and whose
// status is not terminal, oldest reminder first. With after set, the page
// starts strictly after that (reminder_time, id) position.
func (r *implRepository) FindDue(ctx context.Context, now time.Time, after *model.DueCursor, limit int) ([]model.DueTask, error) {
	var cond string
	args := []any{dbTime(now), string(model.TaskStatusCompleted), string(model.TaskStatusDeleted)}
	if after != nil {
		cond = `AND (t.reminder_time > ? OR (t.reminder_time = ? AND t.id > ?))`
		args = append(args, dbTime(after.ReminderTime), dbTime(after.ReminderTime), after.ID)
	}

	query := fmt.Sprintf(`
		SELECT %s, COALESCE(u.email, '') AS owner_email
		FROM tasks t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.reminder_time IS NOT NULL
		AND t.reminder_time <= ?
		AND t.status NOT IN (?, ?)
		%s
		ORDER BY t.reminder_time ASC, t.id ASC`, selectColumns("t"), cond)
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	due := []model.DueTask{}
	if err := r.db.SelectContext(ctx, &due, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindDue"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range due {
		normalizeTask(&due[i].Task)
	}
	return due, nil
}

// ClearReminder sets reminder_time to NULL only while it still holds expected.
// A false result means the reminder was cleared or rescheduled concurrently.
func (r *implRepository) ClearReminder(ctx context.Context, id string, expected time.Time) (bool, error) {
	query := r.db.Rebind(`
		UPDATE tasks SET reminder_time = NULL, updated_at = ?
		WHERE id = ? AND reminder_time = ?`)
	res, err := r.db.ExecContext(ctx, query, dbTime(r.now()), id, dbTime(expected))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearReminder"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ClearReminder"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}
