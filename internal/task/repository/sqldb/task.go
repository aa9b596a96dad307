package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := dbTime(r.now())
	t := model.Task{
		ID:           uuid.NewString(),
		UserID:       opt.UserID,
		EmailID:      opt.EmailID,
		TeamID:       opt.TeamID,
		AssignedTo:   opt.AssignedTo,
		Title:        opt.Title,
		Description:  opt.Description,
		Priority:     opt.Priority,
		Status:       model.TaskStatusPending,
		DueDate:      dbTimePtr(opt.DueDate),
		ReminderTime: dbTimePtr(opt.ReminderTime),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := r.db.Rebind(`
		INSERT INTO tasks (id, user_id, email_id, team_id, assigned_to, title, description,
			priority, status, due_date, reminder_time, calendar_event_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.EmailID, t.TeamID, t.AssignedTo, t.Title, t.Description,
		string(t.Priority), string(t.Status), t.DueDate, t.ReminderTime, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, selectColumns(""))
	args := []any{opt.ID}
	if opt.UserID != "" {
		query += ` AND (user_id = ? OR assigned_to = ?)`
		args = append(args, opt.UserID, opt.UserID)
	}

	var t model.Task
	err := r.db.GetContext(ctx, &t, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	normalizeTask(&t)
	return t, nil
}

// ListTasks returns a filtered, paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListWhere(opt)

	// 1. Count total (without pagination)
	countQuery, countArgs, err := r.expand(`SELECT COUNT(*) FROM tasks WHERE `+where, args)
	if err != nil {
		r.l.Errorf(ctx, "%s expand count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s %s`, selectColumns(""), where, orderClause(opt))
	pageArgs := append([]any{}, args...)
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		pageArgs = append(pageArgs, opt.Limit, opt.Offset)
	}
	query, pageArgs, err = r.expand(query, pageArgs)
	if err != nil {
		r.l.Errorf(ctx, "%s expand: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	tasks := []model.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, pageArgs...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	for i := range tasks {
		normalizeTask(&tasks[i])
	}
	return tasks, total, nil
}

// UpdateTask replaces the editable fields of a Task and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := r.db.Rebind(`
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, due_date = ?, team_id = ?, assigned_to = ?, updated_at = ?
		WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, string(opt.Priority), dbTimePtr(opt.DueDate),
		opt.TeamID, opt.AssignedTo, dbTime(r.now()), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// UpdateStatus changes the status of a Task and records the transition in task_history.
func (r *implRepository) UpdateStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	var from string
	err = tx.GetContext(ctx, &from, tx.Rebind(`SELECT status FROM tasks WHERE id = ?`), opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	now := dbTime(r.now())
	var completedAt any
	if opt.Status == model.TaskStatusCompleted {
		completedAt = now
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`UPDATE tasks SET status = ?, completed_at = ?, updated_at = ? WHERE id = ?`),
		string(opt.Status), completedAt, now, opt.ID,
	); err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`INSERT INTO task_history (id, task_id, user_id, from_status, to_status, note, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`),
		uuid.NewString(), opt.ID, opt.ActorID, from, string(opt.Status), opt.Note, now,
	); err != nil {
		r.l.Errorf(ctx, "%s history: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// SetCalendarEventID links a Task to the calendar event created for it.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	query := r.db.Rebind(`UPDATE tasks SET calendar_event_id = ?, updated_at = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, eventID, dbTime(r.now()), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListHistory returns the status transitions of a Task, oldest first.
func (r *implRepository) ListHistory(ctx context.Context, taskID string) ([]model.TaskHistory, error) {
	query := r.db.Rebind(`
		SELECT id, task_id, user_id, from_status, to_status, note, created_at
		FROM task_history WHERE task_id = ? ORDER BY created_at ASC`)

	entries := []model.TaskHistory{}
	if err := r.db.SelectContext(ctx, &entries, query, taskID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHistory"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range entries {
		entries[i].CreatedAt = entries[i].CreatedAt.UTC()
	}
	return entries, nil
}

// Stats aggregates status, priority and overdue counters for one user.
func (r *implRepository) Stats(ctx context.Context, opt repo.StatsOptions) (repo.Stats, error) {
	stats := repo.Stats{
		ByStatus:   map[model.TaskStatus]int{},
		ByPriority: map[model.TaskPriority]int{},
	}

	type bucket struct {
		Key   string `db:"k"`
		Count int    `db:"n"`
	}

	var byStatus []bucket
	if err := r.db.SelectContext(ctx, &byStatus, r.db.Rebind(`
		SELECT status AS k, COUNT(*) AS n FROM tasks
		WHERE (user_id = ? OR assigned_to = ?) GROUP BY status`), opt.UserID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s status: %v", r.dsn("Stats"), err)
		return repo.Stats{}, repo.ErrFailedToGet
	}
	for _, b := range byStatus {
		stats.ByStatus[model.TaskStatus(b.Key)] = b.Count
	}

	var byPriority []bucket
	if err := r.db.SelectContext(ctx, &byPriority, r.db.Rebind(`
		SELECT priority AS k, COUNT(*) AS n FROM tasks
		WHERE (user_id = ? OR assigned_to = ?) AND status <> ? GROUP BY priority`),
		opt.UserID, opt.UserID, string(model.TaskStatusDeleted)); err != nil {
		r.l.Errorf(ctx, "%s priority: %v", r.dsn("Stats"), err)
		return repo.Stats{}, repo.ErrFailedToGet
	}
	for _, b := range byPriority {
		stats.ByPriority[model.TaskPriority(b.Key)] = b.Count
	}

	if err := r.db.GetContext(ctx, &stats.Overdue, r.db.Rebind(`
		SELECT COUNT(*) FROM tasks
		WHERE (user_id = ? OR assigned_to = ?) AND due_date IS NOT NULL AND due_date < ?
		AND status NOT IN (?, ?)`),
		opt.UserID, opt.UserID, dbTime(opt.Now),
		string(model.TaskStatusCompleted), string(model.TaskStatusDeleted)); err != nil {
		r.l.Errorf(ctx, "%s overdue: %v", r.dsn("Stats"), err)
		return repo.Stats{}, repo.ErrFailedToGet
	}

	return stats, nil
}
