package usecase

import (
	"context"
	"fmt"

	"serava-assistant/internal/calendar"
	"serava-assistant/internal/model"
	"serava-assistant/pkg/gcalendar"
)

func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope) ([]gcalendar.Event, error) {
	token, err := uc.authUC.GetValidAccessToken(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}

	events, err := uc.calendar.ListEvents(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.ListEvents: %v", err)
		return nil, fmt.Errorf("%w: %v", calendar.ErrCalendarFailure, err)
	}
	return events, nil
}

func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (*gcalendar.Event, error) {
	token, err := uc.authUC.GetValidAccessToken(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}

	evInput, err := uc.buildCreateInput(input)
	if err != nil {
		return nil, err
	}

	ev, err := uc.calendar.InsertEvent(ctx, token, evInput)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.CreateEvent: %v", err)
		return nil, fmt.Errorf("%w: %v", calendar.ErrCalendarFailure, err)
	}
	return ev, nil
}

func (uc *implUseCase) UpdateEvent(ctx context.Context, sc model.Scope, input calendar.UpdateEventInput) (*gcalendar.Event, error) {
	token, err := uc.authUC.GetValidAccessToken(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}

	if input.EventID == "" || input.Title == "" || input.Date == "" {
		return nil, fmt.Errorf("%w: event_id, title and date are required", calendar.ErrInvalidInput)
	}
	clock := input.Time
	if clock == "" {
		clock = "09:00"
	}
	start, err := uc.dateMath.At(input.Date, clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrInvalidInput, err)
	}

	ev, err := uc.calendar.PatchEvent(ctx, token, input.EventID, gcalendar.EventInput{
		Summary: input.Title,
		Start:   start,
		End:     start.Add(defaultEventDuration),
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.UpdateEvent: %v", err)
		return nil, fmt.Errorf("%w: %v", calendar.ErrCalendarFailure, err)
	}
	return ev, nil
}

func (uc *implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, eventID string) error {
	token, err := uc.authUC.GetValidAccessToken(ctx, sc.UserID)
	if err != nil {
		return err
	}

	if eventID == "" {
		return fmt.Errorf("%w: event_id is required", calendar.ErrInvalidInput)
	}

	if err := uc.calendar.DeleteEvent(ctx, token, eventID); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.DeleteEvent: %v", err)
		return fmt.Errorf("%w: %v", calendar.ErrCalendarFailure, err)
	}
	return nil
}

func (uc *implUseCase) buildCreateInput(input calendar.CreateEventInput) (gcalendar.EventInput, error) {
	if input.Title == "" || input.Date == "" {
		return gcalendar.EventInput{}, fmt.Errorf("%w: title and date are required", calendar.ErrInvalidInput)
	}

	if input.Time == "" {
		start, err := uc.dateMath.Day(input.Date)
		if err != nil {
			return gcalendar.EventInput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidInput, err)
		}
		end := start
		if input.EndDate != "" {
			if end, err = uc.dateMath.Day(input.EndDate); err != nil {
				return gcalendar.EventInput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidInput, err)
			}
		}
		return gcalendar.EventInput{Summary: input.Title, Start: start, End: end, AllDay: true}, nil
	}

	start, err := uc.dateMath.At(input.Date, input.Time)
	if err != nil {
		return gcalendar.EventInput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidInput, err)
	}
	return gcalendar.EventInput{Summary: input.Title, Start: start, End: start.Add(defaultEventDuration)}, nil
}
