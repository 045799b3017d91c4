package plan

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrPlanNotFound   = errors.New("plan not found")
	ErrEmptyBulk      = errors.New("no plans to create")
	ErrBulkTooLarge   = errors.New("too many plans in one request")
	ErrEmptyInput     = errors.New("text is required")
	ErrTextTooLong    = errors.New("text is too long")
	ErrAIUnavailable  = errors.New("AI parsing is not configured")
	ErrAIFailed       = errors.New("AI parsing failed")
)
