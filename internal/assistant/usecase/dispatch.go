package usecase

import (
	"context"
	"fmt"
	"sync"

	"serava-assistant/internal/assistant"
	"serava-assistant/pkg/gcalendar"
)

// runConcurrent fans out one operation per input, waits for every sibling to
// settle, then fails the batch on the first error in input order. Siblings are
// never cancelled mid-flight; a failed batch discards all sibling results.
func runConcurrent(n int, op func(i int) (assistant.OperationResult, error)) ([]assistant.OperationResult, error) {
	results := make([]assistant.OperationResult, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = op(i)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// dispatchIntent executes a parsed intent against the calendar. Mutating
// intents resolve every target before the first API call runs.
func (uc *implUseCase) dispatchIntent(ctx context.Context, userID, token string, parsed assistant.ParsedIntent, snapshot []gcalendar.Event) ([]assistant.OperationResult, error) {
	var (
		results []assistant.OperationResult
		err     error
	)

	switch parsed.Kind {
	case assistant.KindCreate:
		results, err = uc.dispatchCreate(ctx, token, parsed)
	case assistant.KindUpdate:
		results, err = uc.dispatchUpdate(ctx, token, parsed, snapshot)
	case assistant.KindDelete:
		results, err = uc.dispatchDelete(ctx, token, parsed, snapshot)
	case assistant.KindFetch:
		results, err = uc.dispatchFetch(parsed, snapshot)
	case assistant.KindSchedule:
		results = []assistant.OperationResult{{Action: "schedule", Payload: parsed.Schedule}}
	default:
		return nil, fmt.Errorf("%w: unsupported intent %q", assistant.ErrInvalidRequestData, parsed.Kind)
	}
	if err != nil {
		return nil, err
	}

	switch parsed.Kind {
	case assistant.KindCreate, assistant.KindUpdate, assistant.KindDelete:
		uc.invalidateSnapshot(userID)
	}
	return results, nil
}

func (uc *implUseCase) dispatchCreate(ctx context.Context, token string, parsed assistant.ParsedIntent) ([]assistant.OperationResult, error) {
	if parsed.IsRange() {
		input, err := uc.rangeInput(parsed.Descriptors[0].Title, *parsed.Range)
		if err != nil {
			return nil, err
		}
		ev, err := uc.calendar.InsertEvent(ctx, token, input)
		if err != nil {
			return nil, fmt.Errorf("%w: insert: %v", assistant.ErrUpstreamAPIFailure, err)
		}
		return []assistant.OperationResult{{Action: "created", Event: ev, Message: "event created successfully"}}, nil
	}

	inputs := make([]gcalendar.EventInput, len(parsed.Descriptors))
	for i, d := range parsed.Descriptors {
		start, err := uc.dateMath.At(d.Date, d.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", assistant.ErrInvalidRequestData, err)
		}
		inputs[i] = gcalendar.EventInput{
			Summary: d.Title,
			Start:   start,
			End:     start.Add(defaultEventDuration),
		}
	}

	return runConcurrent(len(inputs), func(i int) (assistant.OperationResult, error) {
		ev, err := uc.calendar.InsertEvent(ctx, token, inputs[i])
		if err != nil {
			return assistant.OperationResult{}, fmt.Errorf("%w: insert: %v", assistant.ErrUpstreamAPIFailure, err)
		}
		return assistant.OperationResult{Action: "created", Event: ev, Message: "event created successfully"}, nil
	})
}

func (uc *implUseCase) dispatchUpdate(ctx context.Context, token string, parsed assistant.ParsedIntent, snapshot []gcalendar.Event) ([]assistant.OperationResult, error) {
	resolutions, err := uc.resolveAll(parsed.Descriptors, snapshot)
	if err != nil {
		return nil, err
	}

	if parsed.IsRange() {
		title := parsed.NewTitle
		if title == "" {
			title = parsed.Descriptors[0].Title
		}
		input, err := uc.rangeInput(title, *parsed.Range)
		if err != nil {
			return nil, err
		}
		ev, err := uc.calendar.PatchEvent(ctx, token, resolutions[0].Event.ID, input)
		if err != nil {
			return nil, fmt.Errorf("%w: patch: %v", assistant.ErrUpstreamAPIFailure, err)
		}
		return []assistant.OperationResult{{Action: "updated", Event: ev, Message: "event updated successfully"}}, nil
	}

	inputs := make([]gcalendar.EventInput, len(resolutions))
	for i, res := range resolutions {
		start, err := uc.dateMath.At(res.Descriptor.Date, res.Descriptor.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", assistant.ErrInvalidRequestData, err)
		}
		inputs[i] = gcalendar.EventInput{
			Summary: res.Descriptor.Title,
			Start:   start,
			End:     start.Add(defaultEventDuration),
		}
	}

	return runConcurrent(len(resolutions), func(i int) (assistant.OperationResult, error) {
		ev, err := uc.calendar.PatchEvent(ctx, token, resolutions[i].Event.ID, inputs[i])
		if err != nil {
			return assistant.OperationResult{}, fmt.Errorf("%w: patch: %v", assistant.ErrUpstreamAPIFailure, err)
		}
		return assistant.OperationResult{Action: "updated", Event: ev, Message: "event updated successfully"}, nil
	})
}

func (uc *implUseCase) dispatchDelete(ctx context.Context, token string, parsed assistant.ParsedIntent, snapshot []gcalendar.Event) ([]assistant.OperationResult, error) {
	resolutions, err := uc.resolveAll(parsed.Descriptors, snapshot)
	if err != nil {
		return nil, err
	}

	return runConcurrent(len(resolutions), func(i int) (assistant.OperationResult, error) {
		ev := resolutions[i].Event
		// Deleting one expanded instance of a recurring series removes the
		// whole series, matching how users phrase "delete my standup".
		id := ev.ID
		if ev.RecurringEventID != "" {
			id = ev.RecurringEventID
		}
		if err := uc.calendar.DeleteEvent(ctx, token, id); err != nil {
			return assistant.OperationResult{}, fmt.Errorf("%w: delete: %v", assistant.ErrUpstreamAPIFailure, err)
		}
		return assistant.OperationResult{Action: "deleted", Event: &ev, Message: "event deleted successfully"}, nil
	})
}

// dispatchFetch reads from the already-fetched snapshot; it never calls the
// calendar API again and mutates nothing.
func (uc *implUseCase) dispatchFetch(parsed assistant.ParsedIntent, snapshot []gcalendar.Event) ([]assistant.OperationResult, error) {
	days := make([]string, 0, len(parsed.Descriptors))
	for _, d := range parsed.Descriptors {
		if d.Date != "" {
			days = append(days, d.Date)
		}
	}

	matched := snapshot
	if len(days) > 0 {
		matched = make([]gcalendar.Event, 0, len(snapshot))
		for _, ev := range snapshot {
			for _, date := range days {
				day, err := uc.dateMath.Day(date)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", assistant.ErrInvalidRequestData, err)
				}
				if uc.dateMath.SameDay(ev.Start, day) {
					matched = append(matched, ev)
					break
				}
			}
		}
	}

	return []assistant.OperationResult{{Action: "fetched", Events: matched}}, nil
}

func (uc *implUseCase) rangeInput(title string, rng assistant.DateRange) (gcalendar.EventInput, error) {
	start, err := uc.dateMath.Day(rng.StartDate)
	if err != nil {
		return gcalendar.EventInput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidRequestData, err)
	}
	end, err := uc.dateMath.Day(rng.EndDate)
	if err != nil {
		return gcalendar.EventInput{}, fmt.Errorf("%w: %v", assistant.ErrInvalidRequestData, err)
	}
	return gcalendar.EventInput{Summary: title, Start: start, End: end, AllDay: true}, nil
}
