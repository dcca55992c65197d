package gcalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// client implements ICalendar over the Google Calendar v3 API.
type client struct {
	calendarID    string
	location      *time.Location
	lookaheadDays int
	maxResults    int64
}

func newClient(cfg Config) (*client, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: invalid timezone %q: %w", cfg.Timezone, err)
	}
	return &client{
		calendarID:    cfg.CalendarID,
		location:      loc,
		lookaheadDays: cfg.LookaheadDays,
		maxResults:    cfg.MaxResults,
	}, nil
}

// service builds a Calendar service authenticated with the caller's token.
func (c *client) service(ctx context.Context, accessToken string) (*calendar.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}
	return svc, nil
}

// ListEvents returns upcoming events within the lookahead window.
func (c *client) ListEvents(ctx context.Context, accessToken string) ([]Event, error) {
	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(c.location)
	res, err := svc.Events.List(c.calendarID).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, c.lookaheadDays).Format(time.RFC3339)).
		MaxResults(c.maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to list events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, c.normalizeEvent(item))
	}
	return events, nil
}

// InsertEvent creates a new event.
func (c *client) InsertEvent(ctx context.Context, accessToken string, input EventInput) (*Event, error) {
	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	created, err := svc.Events.Insert(c.calendarID, c.toAPIEvent(input)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to insert event: %w", err)
	}

	out := c.normalizeEvent(created)
	return &out, nil
}

// PatchEvent partially updates an existing event.
func (c *client) PatchEvent(ctx context.Context, accessToken string, eventID string, input EventInput) (*Event, error) {
	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	patched, err := svc.Events.Patch(c.calendarID, eventID, c.toAPIEvent(input)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to patch event %s: %w", eventID, err)
	}

	out := c.normalizeEvent(patched)
	return &out, nil
}

// DeleteEvent removes an event by id.
func (c *client) DeleteEvent(ctx context.Context, accessToken string, eventID string) error {
	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gcalendar: failed to delete event %s: %w", eventID, err)
	}
	return nil
}

// toAPIEvent converts an EventInput to the Calendar API representation.
func (c *client) toAPIEvent(input EventInput) *calendar.Event {
	event := &calendar.Event{Summary: input.Summary}

	if input.AllDay {
		event.Start = &calendar.EventDateTime{Date: input.Start.In(c.location).Format("2006-01-02")}
		event.End = &calendar.EventDateTime{Date: input.End.In(c.location).Format("2006-01-02")}
		return event
	}

	event.Start = &calendar.EventDateTime{
		DateTime: input.Start.Format(time.RFC3339),
		TimeZone: c.location.String(),
	}
	event.End = &calendar.EventDateTime{
		DateTime: input.End.Format(time.RFC3339),
		TimeZone: c.location.String(),
	}
	return event
}

// normalizeEvent converts a Calendar API event to the simplified representation.
// Start/end instants are carried in the client's location so later calendar-day
// comparisons never operate on raw UTC values.
func (c *client) normalizeEvent(item *calendar.Event) Event {
	event := Event{
		ID:               item.Id,
		Summary:          item.Summary,
		Recurring:        len(item.Recurrence) > 0 || item.RecurringEventId != "",
		RecurringEventID: item.RecurringEventId,
		HTMLLink:         item.HtmlLink,
	}

	if item.Start != nil {
		event.Start, event.AllDay = c.parseEventTime(item.Start)
	}
	if item.End != nil {
		event.End, _ = c.parseEventTime(item.End)
	}
	return event
}

// parseEventTime parses either a dateTime (RFC3339) or an all-day date value.
func (c *client) parseEventTime(edt *calendar.EventDateTime) (time.Time, bool) {
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t.In(c.location), false
	}
	if edt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", edt.Date, c.location)
		if err != nil {
			return time.Time{}, true
		}
		return t, true
	}
	return time.Time{}, false
}
