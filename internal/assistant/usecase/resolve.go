package usecase

import (
	"fmt"
	"strings"

	"serava-assistant/internal/assistant"
	"serava-assistant/pkg/gcalendar"
)

// resolveDescriptor maps a descriptor to its snapshot event: case-insensitive
// exact title match on the same calendar day of the service timezone. When
// several same-day events share the title, the first in snapshot order wins;
// the snapshot is ordered by start time ascending.
func (uc *implUseCase) resolveDescriptor(d assistant.EventDescriptor, snapshot []gcalendar.Event) (gcalendar.Event, error) {
	if d.EventID != "" {
		for _, ev := range snapshot {
			if ev.ID == d.EventID {
				return ev, nil
			}
		}
		// The model lifted the id from context we no longer hold; trust it.
		return gcalendar.Event{ID: d.EventID, Summary: d.Title}, nil
	}

	day, err := uc.dateMath.Day(d.Date)
	if err != nil {
		return gcalendar.Event{}, fmt.Errorf("%w: bad descriptor date %q", assistant.ErrInvalidRequestData, d.Date)
	}

	for _, ev := range snapshot {
		if strings.EqualFold(ev.Summary, d.Title) && uc.dateMath.SameDay(ev.Start, day) {
			return ev, nil
		}
	}
	return gcalendar.Event{}, &assistant.EventNotFoundError{Title: d.Title, Date: d.Date}
}

// resolveAll resolves every descriptor before any mutation runs. One miss
// fails the whole batch, so a partially-applied plan is impossible to start.
func (uc *implUseCase) resolveAll(descriptors []assistant.EventDescriptor, snapshot []gcalendar.Event) ([]assistant.Resolution, error) {
	resolutions := make([]assistant.Resolution, 0, len(descriptors))
	for _, d := range descriptors {
		ev, err := uc.resolveDescriptor(d, snapshot)
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, assistant.Resolution{Descriptor: d, Event: ev})
	}
	return resolutions, nil
}
