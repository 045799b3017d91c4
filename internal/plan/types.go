package plan

import "time"

const (
	// MaxTitleRunes is the longest stored title, in characters.
	MaxTitleRunes = 100

	// MaxTextRunes caps free text handed to the parsers. Keep in sync with parseReq's binding.
	MaxTextRunes = 2000

	// DefaultMaxBulk caps CreateBulk when no limit is configured.
	DefaultMaxBulk = 20
)

// Plan is one entry of a user's daily schedule.
// Time is "HH:MM" or "" when the plan has no time.
type Plan struct {
	ID        string
	UserID    string
	Title     string
	Time      string
	Date      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Candidate is a plan proposed by a parser, not yet stored.
type Candidate struct {
	Title string
	Time  string
	Date  string
}

// ParseSource names the parser whose output was kept.
type ParseSource string

const (
	SourceLocal ParseSource = "local"
	SourceAI    ParseSource = "ai"
	SourceRaw   ParseSource = "raw"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title string
	Time  string
	Date  string
}

// ListInput filters by a single Date or by an inclusive Start..End range. Each accepts YYYY-MM-DD or a datemath expression.
// An empty input lists every plan.
type ListInput struct {
	Date  string
	Start string
	End   string
}

// UpdateInput is a partial update: nil fields keep the stored value.
// A non-nil empty Time clears the time.
type UpdateInput struct {
	ID        string
	Title     *string
	Time      *string
	Date      *string
	Completed *bool
}

type CreateBulkInput struct {
	Plans []Candidate
}

type ParseInput struct {
	Text string
}

type StatsInput struct {
	Year int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Plan Plan
}

type ListOutput struct {
	Plans []Plan
}

type UpdateOutput struct {
	Plan Plan
}

// CreatedPlan pairs a stored plan with its calendar event link, if one was made.
type CreatedPlan struct {
	Plan         Plan
	CalendarLink string
}

type CreateBulkOutput struct {
	Plans   []CreatedPlan
	Skipped int
}

type ParseOutput struct {
	Plans []Candidate
}

type CompleteOutput struct {
	Source  ParseSource
	Plans   []CreatedPlan
	Skipped int
}

// MonthStats counts the plans of one calendar month.
type MonthStats struct {
	Month     int
	Total     int
	Completed int
}

type StatsOutput struct {
	Year      int
	Total     int
	Completed int
	// Rate is the completion percentage over the year, rounded.
	Rate    int
	Monthly []MonthStats
	// WeeklyRate is the completion percentage over the last seven days.
	WeeklyRate      int
	WeeklyTotal     int
	WeeklyCompleted int
	// Streak counts consecutive fully completed days ending today; days without plans are skipped.
	Streak int
}
