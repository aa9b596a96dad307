package sqldb

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"email-task-assistant/internal/user/repository"
	"email-task-assistant/pkg/log"
)

type implRepository struct {
	db  *sqlx.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQL-backed Repository for users.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqldb.%s", method)
}
