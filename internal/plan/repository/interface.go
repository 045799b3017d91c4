package repository

import (
	"context"

	"bbip/internal/plan"
)

// Repository is the composed interface for the plan domain data store.
type Repository interface {
	PlanRepository
}

// PlanRepository defines all data access methods for the Plan entity.
// Every method is scoped to a user.
type PlanRepository interface {
	CreatePlan(ctx context.Context, opt CreatePlanOptions) (plan.Plan, error)
	// CreatePlans inserts all rows in one transaction; either all or none are stored.
	CreatePlans(ctx context.Context, opts []CreatePlanOptions) ([]plan.Plan, error)
	GetOnePlan(ctx context.Context, opt GetOnePlanOptions) (plan.Plan, error)
	ListPlans(ctx context.Context, opt ListPlansOptions) ([]plan.Plan, error)
	UpdatePlan(ctx context.Context, opt UpdatePlanOptions) (plan.Plan, error)
	DeletePlan(ctx context.Context, opt DeletePlanOptions) error
}
