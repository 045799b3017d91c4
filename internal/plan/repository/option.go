package repository

// CreatePlanOptions holds parameters for inserting a new Plan. An empty Time is stored as NULL.
type CreatePlanOptions struct {
	UserID string
	Title  string
	Time   string
	Date   string
}

// GetOnePlanOptions selects a plan owned by UserID.
type GetOnePlanOptions struct {
	ID     string
	UserID string
}

// ListPlansOptions filters a user's plans.
// Date selects one day; StartDate/EndDate select an inclusive range. Date wins when both are set.
type ListPlansOptions struct {
	UserID    string
	Date      string
	StartDate string
	EndDate   string
}

// UpdatePlanOptions holds parameters for a partial update. Nil fields keep the stored value.
// A non-nil empty Time stores NULL.
type UpdatePlanOptions struct {
	ID        string
	UserID    string
	Title     *string
	Time      *string
	Date      *string
	Completed *bool
}

// DeletePlanOptions selects the plan to remove.
type DeletePlanOptions struct {
	ID     string
	UserID string
}
