package usecase

import (
	"context"

	"bbip/internal/model"
	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
	"bbip/pkg/datemath"
)

// CreateBulk stores up to maxBulk candidates in one transaction.
// Candidates with a blank or overlong title or an invalid date are skipped; malformed times are dropped;
// a missing date means today. Timed plans are mirrored to the calendar when one is configured.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input plan.CreateBulkInput) (plan.CreateBulkOutput, error) {
	if len(input.Plans) == 0 {
		return plan.CreateBulkOutput{}, plan.ErrEmptyBulk
	}
	if len(input.Plans) > uc.maxBulk {
		return plan.CreateBulkOutput{}, plan.ErrBulkTooLarge
	}

	today := uc.today()
	opts := make([]repo.CreatePlanOptions, 0, len(input.Plans))
	skipped := 0

	for _, c := range input.Plans {
		title, ok := cleanTitle(c.Title)
		if !ok {
			skipped++
			continue
		}

		date := c.Date
		if date == "" {
			date = today
		} else if !datemath.ValidDate(date) {
			skipped++
			continue
		}

		clock := c.Time
		if !validClock(clock) {
			clock = ""
		}

		opts = append(opts, repo.CreatePlanOptions{
			UserID: sc.UserID,
			Title:  title,
			Time:   clock,
			Date:   date,
		})
	}

	out := plan.CreateBulkOutput{Plans: make([]plan.CreatedPlan, 0, len(opts)), Skipped: skipped}
	if len(opts) == 0 {
		return out, nil
	}

	plans, err := uc.repo.CreatePlans(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.CreateBulk.CreatePlans: %v", err)
		return plan.CreateBulkOutput{}, err
	}

	for _, p := range plans {
		out.Plans = append(out.Plans, plan.CreatedPlan{
			Plan:         p,
			CalendarLink: uc.tryMirrorToCalendar(ctx, p),
		})
	}

	uc.l.Infof(ctx, "plan.usecase.CreateBulk: user_id=%s created=%d skipped=%d", sc.UserID, len(plans), skipped)
	return out, nil
}
