package usecase

import (
	"context"

	"bbip/internal/model"
	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
)

// List returns the caller's plans for one day, a date range, or all of them.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input plan.ListInput) (plan.ListOutput, error) {
	opt := repo.ListPlansOptions{UserID: sc.UserID}

	switch {
	case input.Date != "":
		date, ok := uc.resolveDate(input.Date)
		if !ok {
			return plan.ListOutput{}, plan.ErrInvalidPayload
		}
		opt.Date = date
	case input.Start != "" || input.End != "":
		if input.Start != "" {
			start, ok := uc.resolveDate(input.Start)
			if !ok {
				return plan.ListOutput{}, plan.ErrInvalidPayload
			}
			opt.StartDate = start
		}
		if input.End != "" {
			end, ok := uc.resolveDate(input.End)
			if !ok {
				return plan.ListOutput{}, plan.ErrInvalidPayload
			}
			opt.EndDate = end
		}
	}

	plans, err := uc.repo.ListPlans(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.List.ListPlans: %v", err)
		return plan.ListOutput{}, err
	}

	return plan.ListOutput{Plans: plans}, nil
}
