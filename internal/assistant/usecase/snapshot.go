package usecase

import (
	"context"
	"fmt"

	"serava-assistant/internal/assistant"
	"serava-assistant/pkg/gcalendar"
)

// fetchSnapshot returns the user's upcoming events inside the lookahead
// window. A short-lived per-user cache absorbs rapid back-to-back prompts;
// it never outlives a mutation on the same user.
func (uc *implUseCase) fetchSnapshot(ctx context.Context, userID, token string) ([]gcalendar.Event, error) {
	if uc.snapshots != nil {
		if events, ok := uc.snapshots.Get(userID); ok {
			return events, nil
		}
	}

	events, err := uc.calendar.ListEvents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", assistant.ErrUpstreamAPIFailure, err)
	}

	if uc.snapshots != nil {
		uc.snapshots.Add(userID, events)
	}
	return events, nil
}

func (uc *implUseCase) invalidateSnapshot(userID string) {
	if uc.snapshots != nil {
		uc.snapshots.Remove(userID)
	}
}
