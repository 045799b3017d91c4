package usecase

import (
	"context"
	"strings"
	"time"

	"bbip/internal/plan"
	"bbip/pkg/gcalendar"
)

const calendarEventDuration = time.Hour

// tryMirrorToCalendar creates a one-hour event for a timed plan.
// Returns the event link, or "" when there is no calendar, the plan has no time,
// an event with the same title already exists that day, or the call fails.
func (uc *implUseCase) tryMirrorToCalendar(ctx context.Context, p plan.Plan) string {
	if uc.calendar == nil || p.Time == "" {
		return ""
	}

	start, err := uc.dates.At(p.Date, p.Time)
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.tryMirrorToCalendar: bad time for plan %s: %v", p.ID, err)
		calendarSyncTotal.WithLabelValues("error").Inc()
		return ""
	}

	dayStart, _ := uc.dates.At(p.Date, "00:00")
	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: dayStart,
		TimeMax: uc.dates.EndOfDay(dayStart),
	})
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.tryMirrorToCalendar: list events failed (non-fatal): %v", err)
		calendarSyncTotal.WithLabelValues("error").Inc()
		return ""
	}
	for _, ev := range existing {
		if strings.EqualFold(strings.TrimSpace(ev.Summary), p.Title) {
			calendarSyncTotal.WithLabelValues("duplicate").Inc()
			return ev.HtmlLink
		}
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   p.Title,
		StartTime: start,
		EndTime:   start.Add(calendarEventDuration),
		Timezone:  uc.dates.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.tryMirrorToCalendar: create event failed for %q (non-fatal): %v", p.Title, err)
		calendarSyncTotal.WithLabelValues("error").Inc()
		return ""
	}

	calendarSyncTotal.WithLabelValues("created").Inc()
	return event.HtmlLink
}
