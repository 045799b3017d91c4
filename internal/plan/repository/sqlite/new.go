package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"bbip/internal/plan/repository"
	"bbip/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new sqlite-backed Repository for the plan domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("plan/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/sqlite.%s", method)
}
