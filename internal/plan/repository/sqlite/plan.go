package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
)

const insertPlanQuery = `
	INSERT INTO plans (id, user_id, title, time, date, completed, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, 0, ?, ?)
	RETURNING ` + planColumns

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *implRepository) insert(ctx context.Context, q queryRower, opt repo.CreatePlanOptions, now string) (plan.Plan, error) {
	return scanPlan(q.QueryRowContext(ctx, insertPlanQuery,
		uuid.NewString(), opt.UserID, opt.Title, nullString(opt.Time), opt.Date, now, now,
	))
}

// CreatePlan inserts a new Plan row and returns the created entity.
func (r *implRepository) CreatePlan(ctx context.Context, opt repo.CreatePlanOptions) (plan.Plan, error) {
	p, err := r.insert(ctx, r.db, opt, r.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePlan"), err)
		return plan.Plan{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// CreatePlans inserts every row inside one transaction and returns them in input order.
func (r *implRepository) CreatePlans(ctx context.Context, opts []repo.CreatePlanOptions) ([]plan.Plan, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreatePlans"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	now := r.now().UTC().Format(time.RFC3339Nano)
	plans := make([]plan.Plan, 0, len(opts))
	for _, opt := range opts {
		p, err := r.insert(ctx, tx, opt, now)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePlans"), err)
			return nil, repo.ErrFailedToInsert
		}
		plans = append(plans, p)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreatePlans"), err)
		return nil, repo.ErrFailedToInsert
	}
	return plans, nil
}

// GetOnePlan retrieves a plan owned by the user.
// Returns zero-value Plan (ID == "") when not found or owned by someone else.
func (r *implRepository) GetOnePlan(ctx context.Context, opt repo.GetOnePlanOptions) (plan.Plan, error) {
	const query = `SELECT ` + planColumns + ` FROM plans WHERE id = ? AND user_id = ? LIMIT 1`

	p, err := scanPlan(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return plan.Plan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePlan"), err)
		return plan.Plan{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPlans returns the user's plans matching the filter.
func (r *implRepository) ListPlans(ctx context.Context, opt repo.ListPlansOptions) ([]plan.Plan, error) {
	mods, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans `+mods, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlans"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	plans := make([]plan.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPlans"), err)
			return nil, repo.ErrFailedToList
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPlans"), err)
		return nil, repo.ErrFailedToList
	}
	return plans, nil
}

// UpdatePlan applies a partial update and returns the updated entity.
// Returns zero-value Plan when the plan does not exist for this user.
func (r *implRepository) UpdatePlan(ctx context.Context, opt repo.UpdatePlanOptions) (plan.Plan, error) {
	const query = `
		UPDATE plans
		SET title = COALESCE(?, title),
			time = CASE WHEN ? THEN ? ELSE time END,
			date = COALESCE(?, date),
			completed = COALESCE(?, completed),
			updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING ` + planColumns

	var clock sql.NullString
	if opt.Time != nil {
		clock = nullString(*opt.Time)
	}

	p, err := scanPlan(r.db.QueryRowContext(ctx, query,
		nullStringPtr(opt.Title),
		opt.Time != nil, clock,
		nullStringPtr(opt.Date),
		nullBool(opt.Completed),
		r.now().UTC().Format(time.RFC3339Nano),
		opt.ID, opt.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return plan.Plan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePlan"), err)
		return plan.Plan{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeletePlan removes a plan owned by the user. Deleting a missing plan is not an error.
func (r *implRepository) DeletePlan(ctx context.Context, opt repo.DeletePlanOptions) error {
	const query = `DELETE FROM plans WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePlan"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
