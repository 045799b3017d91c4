package http

import (
	"bbip/internal/plan"
	"bbip/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"required"`
	Time  string `json:"time"`
	Date  string `json:"date"  binding:"required"`
}

func (r createReq) toInput() plan.CreateInput {
	return plan.CreateInput{
		Title: r.Title,
		Time:  r.Time,
		Date:  r.Date,
	}
}

// ---

type listReq struct {
	Date  string `form:"date"`
	Start string `form:"start"`
	End   string `form:"end"`
}

func (r listReq) toInput() plan.ListInput {
	return plan.ListInput{
		Date:  r.Date,
		Start: r.Start,
		End:   r.End,
	}
}

// ---

// updateReq is a partial update. A null or empty time clears it; an absent time keeps it.
type updateReq struct {
	Title     *string     `json:"title"`
	Time      nullableStr `json:"time"`
	Date      *string     `json:"date"`
	Completed *bool       `json:"completed"`
}

func (r updateReq) toInput(id string) plan.UpdateInput {
	return plan.UpdateInput{
		ID:        id,
		Title:     r.Title,
		Time:      r.Time.ptr(),
		Date:      r.Date,
		Completed: r.Completed,
	}
}

// ---

type candidateReq struct {
	Title string  `json:"title"`
	Time  *string `json:"time"`
	Date  string  `json:"date"`
}

type createBulkReq struct {
	Plans []candidateReq `json:"plans"`
}

func (r createBulkReq) toInput() plan.CreateBulkInput {
	in := plan.CreateBulkInput{Plans: make([]plan.Candidate, 0, len(r.Plans))}
	for _, c := range r.Plans {
		cand := plan.Candidate{Title: c.Title, Date: c.Date}
		if c.Time != nil {
			cand.Time = *c.Time
		}
		in.Plans = append(in.Plans, cand)
	}
	return in
}

// ---

type parseReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r parseReq) toInput() plan.ParseInput {
	return plan.ParseInput{Text: r.Text}
}

// ---

type statsReq struct {
	Year int `form:"year"`
}

// --- Response DTOs ---

type planResp struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Time         *string           `json:"time"`
	Date         string            `json:"date"`
	Completed    bool              `json:"completed"`
	CalendarLink string            `json:"calendar_link,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newPlanResp(p plan.Plan) planResp {
	return planResp{
		ID:        p.ID,
		Title:     p.Title,
		Time:      optionalTime(p.Time),
		Date:      p.Date,
		Completed: p.Completed,
		CreatedAt: response.DateTime(p.CreatedAt),
		UpdatedAt: response.DateTime(p.UpdatedAt),
	}
}

func optionalTime(t string) *string {
	if t == "" {
		return nil
	}
	return &t
}

type planItemResp struct {
	Plan planResp `json:"plan"`
}

func (h *handler) newPlanItemResp(p plan.Plan) planItemResp {
	return planItemResp{Plan: newPlanResp(p)}
}

type planListResp struct {
	Plans []planResp `json:"plans"`
}

func (h *handler) newPlanListResp(plans []plan.Plan) planListResp {
	out := planListResp{Plans: make([]planResp, 0, len(plans))}
	for _, p := range plans {
		out.Plans = append(out.Plans, newPlanResp(p))
	}
	return out
}

type createBulkResp struct {
	Plans   []planResp `json:"plans"`
	Created int        `json:"created"`
	Skipped int        `json:"skipped"`
}

func newCreatedPlansResp(created []plan.CreatedPlan) []planResp {
	out := make([]planResp, 0, len(created))
	for _, c := range created {
		r := newPlanResp(c.Plan)
		r.CalendarLink = c.CalendarLink
		out = append(out, r)
	}
	return out
}

func (h *handler) newCreateBulkResp(o plan.CreateBulkOutput) createBulkResp {
	return createBulkResp{
		Plans:   newCreatedPlansResp(o.Plans),
		Created: len(o.Plans),
		Skipped: o.Skipped,
	}
}

type candidateResp struct {
	Title string  `json:"title"`
	Time  *string `json:"time"`
	Date  string  `json:"date"`
}

type parseResp struct {
	Plans []candidateResp `json:"plans"`
}

func (h *handler) newParseResp(o plan.ParseOutput) parseResp {
	out := parseResp{Plans: make([]candidateResp, 0, len(o.Plans))}
	for _, c := range o.Plans {
		out.Plans = append(out.Plans, candidateResp{
			Title: c.Title,
			Time:  optionalTime(c.Time),
			Date:  c.Date,
		})
	}
	return out
}

type completeResp struct {
	Source  string     `json:"source"`
	Plans   []planResp `json:"plans"`
	Created int        `json:"created"`
	Skipped int        `json:"skipped"`
}

func (h *handler) newCompleteResp(o plan.CompleteOutput) completeResp {
	return completeResp{
		Source:  string(o.Source),
		Plans:   newCreatedPlansResp(o.Plans),
		Created: len(o.Plans),
		Skipped: o.Skipped,
	}
}

type monthStatsResp struct {
	Month     int `json:"month"`
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type statsResp struct {
	Year            int              `json:"year"`
	Total           int              `json:"total"`
	Completed       int              `json:"completed"`
	Rate            int              `json:"rate"`
	Monthly         []monthStatsResp `json:"monthly"`
	WeeklyRate      int              `json:"weekly_rate"`
	WeeklyTotal     int              `json:"weekly_total"`
	WeeklyCompleted int              `json:"weekly_completed"`
	Streak          int              `json:"streak"`
}

func (h *handler) newStatsResp(o plan.StatsOutput) statsResp {
	monthly := make([]monthStatsResp, 0, len(o.Monthly))
	for _, m := range o.Monthly {
		monthly = append(monthly, monthStatsResp{Month: m.Month, Total: m.Total, Completed: m.Completed})
	}
	return statsResp{
		Year:            o.Year,
		Total:           o.Total,
		Completed:       o.Completed,
		Rate:            o.Rate,
		Monthly:         monthly,
		WeeklyRate:      o.WeeklyRate,
		WeeklyTotal:     o.WeeklyTotal,
		WeeklyCompleted: o.WeeklyCompleted,
		Streak:          o.Streak,
	}
}
