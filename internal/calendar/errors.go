package calendar

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid event input")
	ErrCalendarFailure = errors.New("calendar API failure")
)
