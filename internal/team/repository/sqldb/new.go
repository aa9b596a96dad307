package sqldb

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"email-task-assistant/internal/team/repository"
	"email-task-assistant/pkg/log"
)

type implRepository struct {
	db  *sqlx.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQL-backed Repository for teams and memberships.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("team/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("team/repository/sqldb.%s", method)
}

func (r *implRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}
