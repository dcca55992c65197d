package calendar

import (
	"context"

	"serava-assistant/internal/model"
	"serava-assistant/pkg/gcalendar"
)

// UseCase is the direct calendar surface. It mirrors the Google Calendar
// operations the assistant dispatches, for clients that already know exactly
// what to change.
type UseCase interface {
	ListEvents(ctx context.Context, sc model.Scope) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, sc model.Scope, input UpdateEventInput) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error
}
