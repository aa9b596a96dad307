package sqldb

import (
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"email-task-assistant/internal/model"
	repo "email-task-assistant/internal/task/repository"
)

var taskColumns = []string{
	"id", "user_id", "email_id", "team_id", "assigned_to", "title", "description",
	"priority", "status", "due_date", "reminder_time", "completed_at",
	"calendar_event_id", "created_at", "updated_at",
}

// selectColumns renders the task column list, optionally qualified with a table alias.
func selectColumns(alias string) string {
	if alias == "" {
		return strings.Join(taskColumns, ", ")
	}
	cols := make([]string, len(taskColumns))
	for i, c := range taskColumns {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// buildListWhere builds the WHERE clause + args shared by ListTasks and its count.
func (r *implRepository) buildListWhere(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "(user_id = ? OR assigned_to = ?)")
		args = append(args, opt.UserID, opt.UserID)
	}
	if opt.TeamID != "" {
		conditions = append(conditions, "team_id = ?")
		args = append(args, opt.TeamID)
	}

	if len(opt.Statuses) > 0 {
		statuses := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "status IN (?)")
		args = append(args, statuses)
	} else {
		conditions = append(conditions, "status <> ?")
		args = append(args, string(model.TaskStatusDeleted))
	}
	if opt.OnlyOpen {
		conditions = append(conditions, "status NOT IN (?, ?)")
		args = append(args, string(model.TaskStatusCompleted), string(model.TaskStatusDeleted))
	}

	if len(opt.Priorities) > 0 {
		priorities := make([]string, len(opt.Priorities))
		for i, p := range opt.Priorities {
			priorities[i] = string(p)
		}
		conditions = append(conditions, "priority IN (?)")
		args = append(args, priorities)
	}

	if opt.DueFrom != nil {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, dbTime(*opt.DueFrom))
	}
	if opt.DueTo != nil {
		conditions = append(conditions, "due_date <= ?")
		args = append(args, dbTime(*opt.DueTo))
	}
	if opt.ReminderAfter != nil {
		conditions = append(conditions, "reminder_time IS NOT NULL AND reminder_time > ?")
		args = append(args, dbTime(*opt.ReminderAfter))
	}

	if s := strings.TrimSpace(opt.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		conditions = append(conditions, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern)
	}

	return strings.Join(conditions, " AND "), args
}

// orderClause returns the ORDER BY for a list. Tasks without a due date sort last.
func orderClause(opt repo.ListTasksOptions) string {
	if opt.ReminderAfter != nil {
		return "ORDER BY reminder_time ASC"
	}
	return "ORDER BY CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC"
}

// expand expands slice arguments and rebinds the query for the current driver.
func (r *implRepository) expand(query string, args []any) (string, []any, error) {
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}
	return r.db.Rebind(query), args, nil
}

// normalizeTask converts every timestamp to UTC.
func normalizeTask(t *model.Task) {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	t.DueDate = utcPtr(t.DueDate)
	t.ReminderTime = utcPtr(t.ReminderTime)
	t.CompletedAt = utcPtr(t.CompletedAt)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
