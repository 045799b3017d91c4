package gcalendar

import "time"

// DefaultCalendarID is used when neither the client nor the request names a calendar.
const DefaultCalendarID = "primary"

// TokenFile is where the OAuth token for installed-app credentials is read from, relative to the working directory.
const TokenFile = "token.json"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Seoul"
}

// Event is a simplified representation of a Google Calendar event.
// AllDay events carry midnight start/end times in the client's timezone.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Option configures a Client.
type Option func(*Client)

// WithCalendarID sets the calendar used when a request leaves CalendarID empty.
func WithCalendarID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.calendarID = id
		}
	}
}

// WithLocation sets the timezone sent with created events and used for all-day events.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}
