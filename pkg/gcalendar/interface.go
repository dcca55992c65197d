package gcalendar

import "context"

// ICalendar defines the interface for the Google Calendar API client.
// Every call authenticates with the caller's bearer token, so one client
// instance serves all users.
type ICalendar interface {
	// ListEvents returns the upcoming events inside the configured lookahead window,
	// expanded to single instances and ordered by start time.
	ListEvents(ctx context.Context, accessToken string) ([]Event, error)

	// InsertEvent creates a new event.
	InsertEvent(ctx context.Context, accessToken string, input EventInput) (*Event, error)

	// PatchEvent partially updates an existing event.
	PatchEvent(ctx context.Context, accessToken string, eventID string, input EventInput) (*Event, error)

	// DeleteEvent removes an event by id.
	DeleteEvent(ctx context.Context, accessToken string, eventID string) error
}

// New creates a new Calendar client with the given configuration.
func New(cfg Config) (ICalendar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg)
}
