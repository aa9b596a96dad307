package sqldb

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"email-task-assistant/internal/task/repository"
	"email-task-assistant/pkg/log"
)

type implRepository struct {
	db  *sqlx.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQL-backed Repository for the task domain.
// It works with both postgres and sqlite handles; queries are rebound per driver.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqldb.%s", method)
}

// dbTime normalizes an instant to the precision and zone every column is stored in.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func dbTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := dbTime(*t)
	return &v
}
