package calendar

// CreateEventInput is a direct event creation, bypassing the assistant.
type CreateEventInput struct {
	Title   string
	Date    string // YYYY-MM-DD
	Time    string // HH:mm, empty for all-day
	EndDate string // all-day events only; defaults to Date
}

// UpdateEventInput patches an existing event by id.
type UpdateEventInput struct {
	EventID string
	Title   string
	Date    string
	Time    string
}
