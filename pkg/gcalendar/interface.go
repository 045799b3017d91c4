package gcalendar

import "context"

// Calendar is the subset of Google Calendar used to mirror plans.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

var _ Calendar = (*Client)(nil)
