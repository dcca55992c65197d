package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPrompt        = errors.New("prompt is empty")
	ErrInvalidRequestData = errors.New("invalid request data")
	ErrUpstreamAPIFailure = errors.New("upstream API failure")
	ErrEventNotFound      = errors.New("event not found")
)

// EventNotFoundError is a resolution miss. It always carries the human title
// and date so the caller can render an actionable message.
type EventNotFoundError struct {
	Title string
	Date  string
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("cannot find event %q scheduled for %s; please verify the event name and date", e.Title, e.Date)
}

// Is makes errors.Is(err, ErrEventNotFound) match.
func (e *EventNotFoundError) Is(target error) bool {
	return target == ErrEventNotFound
}
