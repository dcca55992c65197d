package gcalendar

const (
	// DefaultLookaheadDays bounds the snapshot window.
	DefaultLookaheadDays = 90

	// DefaultMaxResults caps a single events.list page.
	DefaultMaxResults = 250
)
