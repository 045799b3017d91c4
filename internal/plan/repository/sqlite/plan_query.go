package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
)

const planColumns = `id, user_id, title, time, date, completed, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (plan.Plan, error) {
	var (
		p                    plan.Plan
		clock                sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &clock, &p.Date, &p.Completed, &createdAt, &updatedAt); err != nil {
		return plan.Plan{}, err
	}
	p.Time = clock.String
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return p, nil
}

// buildListQuery builds the WHERE + ORDER BY clause for ListPlans.
// One day is ordered by time; a range by date then time; everything by newest date first.
func (r *implRepository) buildListQuery(opt repo.ListPlansOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}
	orderBy := "date DESC, time ASC"

	switch {
	case opt.Date != "":
		conditions = append(conditions, "date = ?")
		args = append(args, opt.Date)
		orderBy = "time ASC"
	case opt.StartDate != "" || opt.EndDate != "":
		if opt.StartDate != "" {
			conditions = append(conditions, "date >= ?")
			args = append(args, opt.StartDate)
		}
		if opt.EndDate != "" {
			conditions = append(conditions, "date <= ?")
			args = append(args, opt.EndDate)
		}
		orderBy = "date ASC, time ASC"
	}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY " + orderBy + ", created_at ASC", args
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
