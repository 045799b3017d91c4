package usecase

import (
	"context"

	"bbip/internal/model"
	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
	"bbip/pkg/datemath"
)

// Create stores one plan. Title and date are required; time is optional.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input plan.CreateInput) (plan.CreateOutput, error) {
	title, ok := cleanTitle(input.Title)
	if !ok || !datemath.ValidDate(input.Date) {
		return plan.CreateOutput{}, plan.ErrInvalidPayload
	}
	if input.Time != "" && !validClock(input.Time) {
		return plan.CreateOutput{}, plan.ErrInvalidPayload
	}

	p, err := uc.repo.CreatePlan(ctx, repo.CreatePlanOptions{
		UserID: sc.UserID,
		Title:  title,
		Time:   input.Time,
		Date:   input.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Create.CreatePlan: %v", err)
		return plan.CreateOutput{}, err
	}

	return plan.CreateOutput{Plan: p}, nil
}
