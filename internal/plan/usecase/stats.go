package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"bbip/internal/model"
	"bbip/internal/plan"
	repo "bbip/internal/plan/repository"
	"bbip/pkg/datemath"
)

const (
	weekDays       = 7
	streakLookback = 60
)

type dayCount struct {
	total     int
	completed int
}

// Stats summarizes the caller's plans of one year. Year 0 means the current year.
// The weekly rate and the streak look back from today over the same plans.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, input plan.StatsInput) (plan.StatsOutput, error) {
	now := uc.localNow()
	year := input.Year
	if year == 0 {
		year = now.Year()
	}
	if year < 1970 || year > 9999 {
		return plan.StatsOutput{}, plan.ErrInvalidPayload
	}

	plans, err := uc.repo.ListPlans(ctx, repo.ListPlansOptions{
		UserID:    sc.UserID,
		StartDate: fmt.Sprintf("%04d-01-01", year),
		EndDate:   fmt.Sprintf("%04d-12-31", year),
	})
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Stats.ListPlans: %v", err)
		return plan.StatsOutput{}, err
	}

	return summarize(plans, year, now), nil
}

func summarize(plans []plan.Plan, year int, now time.Time) plan.StatsOutput {
	out := plan.StatsOutput{
		Year:    year,
		Monthly: make([]plan.MonthStats, 12),
	}
	for i := range out.Monthly {
		out.Monthly[i].Month = i + 1
	}

	today := now.Format(datemath.DateFormat)
	weekStart := now.AddDate(0, 0, -(weekDays - 1)).Format(datemath.DateFormat)
	byDay := make(map[string]*dayCount)

	for _, p := range plans {
		d, err := time.Parse(datemath.DateFormat, p.Date)
		if err != nil {
			continue
		}

		out.Total++
		m := &out.Monthly[d.Month()-1]
		m.Total++
		if p.Completed {
			out.Completed++
			m.Completed++
		}

		if p.Date >= weekStart && p.Date <= today {
			out.WeeklyTotal++
			if p.Completed {
				out.WeeklyCompleted++
			}
		}

		dc, ok := byDay[p.Date]
		if !ok {
			dc = &dayCount{}
			byDay[p.Date] = dc
		}
		dc.total++
		if p.Completed {
			dc.completed++
		}
	}

	out.Rate = percent(out.Completed, out.Total)
	out.WeeklyRate = percent(out.WeeklyCompleted, out.WeeklyTotal)
	out.Streak = streak(byDay, now)
	return out
}

// streak counts fully completed days walking back from now. Days without plans neither count nor break it.
func streak(byDay map[string]*dayCount, now time.Time) int {
	n := 0
	for i := 0; i < streakLookback; i++ {
		dc, ok := byDay[now.AddDate(0, 0, -i).Format(datemath.DateFormat)]
		if !ok || dc.total == 0 {
			continue
		}
		if dc.completed != dc.total {
			break
		}
		n++
	}
	return n
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
