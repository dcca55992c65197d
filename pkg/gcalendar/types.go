package gcalendar

import (
	"errors"
	"time"
)

// Config holds the Calendar client configuration.
type Config struct {
	CalendarID    string // defaults to "primary"
	Timezone      string // IANA zone for event normalization, e.g. "Asia/Kolkata"
	LookaheadDays int    // snapshot window size, defaults to 90
	MaxResults    int64  // defaults to 250
}

// Validate checks required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.CalendarID == "" {
		c.CalendarID = "primary"
	}
	if c.Timezone == "" {
		return errors.New("gcalendar: timezone is required")
	}
	if c.LookaheadDays <= 0 {
		c.LookaheadDays = DefaultLookaheadDays
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	return nil
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID               string
	Summary          string
	Start            time.Time
	End              time.Time
	AllDay           bool
	Recurring        bool
	RecurringEventID string
	HTMLLink         string
}

// EventInput is the payload for inserting or patching an event.
// When AllDay is set, Start and End are written as date-only values.
type EventInput struct {
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
}
