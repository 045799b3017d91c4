package usecase

import (
	"context"

	"bbip/internal/model"
	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
	"bbip/pkg/datemath"
)

// Update modifies the given fields of a plan. Returns ErrPlanNotFound when the caller does not own it.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input plan.UpdateInput) (plan.UpdateOutput, error) {
	if input.ID == "" {
		return plan.UpdateOutput{}, plan.ErrInvalidPayload
	}

	opt := repo.UpdatePlanOptions{
		ID:        input.ID,
		UserID:    sc.UserID,
		Time:      input.Time,
		Date:      input.Date,
		Completed: input.Completed,
	}
	if input.Title != nil {
		title, ok := cleanTitle(*input.Title)
		if !ok {
			return plan.UpdateOutput{}, plan.ErrInvalidPayload
		}
		opt.Title = &title
	}
	if input.Time != nil && *input.Time != "" && !validClock(*input.Time) {
		return plan.UpdateOutput{}, plan.ErrInvalidPayload
	}
	if input.Date != nil && !datemath.ValidDate(*input.Date) {
		return plan.UpdateOutput{}, plan.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOnePlan(ctx, repo.GetOnePlanOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Update.GetOnePlan: %v", err)
		return plan.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return plan.UpdateOutput{}, plan.ErrPlanNotFound
	}

	p, err := uc.repo.UpdatePlan(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Update.UpdatePlan: %v", err)
		return plan.UpdateOutput{}, err
	}
	if p.ID == "" {
		return plan.UpdateOutput{}, plan.ErrPlanNotFound
	}

	return plan.UpdateOutput{Plan: p}, nil
}

// Delete removes a plan. Returns ErrPlanNotFound when the caller does not own it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if id == "" {
		return plan.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOnePlan(ctx, repo.GetOnePlanOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Delete.GetOnePlan: %v", err)
		return err
	}
	if existing.ID == "" {
		return plan.ErrPlanNotFound
	}

	if err := uc.repo.DeletePlan(ctx, repo.DeletePlanOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Delete.DeletePlan: %v", err)
		return err
	}
	return nil
}
