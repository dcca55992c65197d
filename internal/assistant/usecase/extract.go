package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"serava-assistant/internal/assistant"
	"serava-assistant/pkg/gcalendar"
	"serava-assistant/pkg/llmprovider"
)

const missingDetailsMessage = "Missing required details"

// extractIntent runs structured extraction against the snapshot context.
// Invalid or incomplete model output is reported as an error-kind intent so
// the dispatch engine is never reached with a malformed plan; only the LLM
// call itself failing is a hard error.
func (uc *implUseCase) extractIntent(ctx context.Context, prompt string, snapshot []gcalendar.Event, isRange bool) (assistant.ParsedIntent, error) {
	today := uc.today()
	template := pointExtractionTemplate
	if isRange {
		template = rangeExtractionTemplate
	}
	instruction := fmt.Sprintf(template, today, renderSnapshot(snapshot), today)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction(instruction),
		Messages:          userMessage(prompt),
		Temperature:       0.2,
		MaxTokens:         2048,
	})
	if err != nil {
		return assistant.ParsedIntent{}, fmt.Errorf("%w: extract: %v", assistant.ErrUpstreamAPIFailure, err)
	}

	raw := resp.Text()
	cleaned := sanitizeJSONResponse(raw)

	var dto rawIntentDTO
	if err := json.Unmarshal([]byte(cleaned), &dto); err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.extractIntent: unparseable model reply: %q", raw)
		return errorIntent(missingDetailsMessage), nil
	}
	if dto.Error != "" {
		return errorIntent(dto.Error), nil
	}

	if isRange {
		return uc.buildRangeIntent(dto), nil
	}
	return uc.buildPointIntent(dto, json.RawMessage(cleaned)), nil
}

func errorIntent(message string) assistant.ParsedIntent {
	return assistant.ParsedIntent{Kind: assistant.KindError, ErrorMessage: message}
}

func (uc *implUseCase) buildPointIntent(dto rawIntentDTO, cleaned json.RawMessage) assistant.ParsedIntent {
	kind := assistant.IntentKind(dto.Intent)
	switch kind {
	case assistant.KindCreate, assistant.KindUpdate, assistant.KindDelete, assistant.KindFetch:
	case assistant.KindSchedule:
		// The recommendation payload is opaque to us; pass it through whole.
		return assistant.ParsedIntent{Kind: kind, Schedule: cleaned}
	default:
		return errorIntent(missingDetailsMessage)
	}

	events := dto.Events
	if len(events) == 0 {
		// Older single-event shape with fields at the top level.
		events = []rawEventDTO{{Title: dto.Title, Date: dto.Date, Time: dto.Time, EventID: dto.EventID}}
	}

	descriptors := make([]assistant.EventDescriptor, 0, len(events))
	for _, ev := range events {
		d := assistant.EventDescriptor{
			Title:   ev.Title,
			Date:    uc.normalizeDate(ev.Date),
			Time:    ev.Time,
			EventID: ev.EventID,
		}
		if d.Time == "" {
			d.Time = defaultEventTime
		}

		if kind == assistant.KindFetch {
			// A fetch without a date filters nothing and returns the
			// whole snapshot.
			if d.Date == "" {
				continue
			}
			if _, err := uc.dateMath.Day(d.Date); err != nil {
				return errorIntent(missingDetailsMessage)
			}
			descriptors = append(descriptors, d)
			continue
		}

		if d.Date == "" || d.Title == "" {
			return errorIntent(missingDetailsMessage)
		}
		if _, err := uc.dateMath.At(d.Date, d.Time); err != nil {
			return errorIntent(missingDetailsMessage)
		}
		descriptors = append(descriptors, d)
	}

	return assistant.ParsedIntent{Kind: kind, Descriptors: descriptors}
}

func (uc *implUseCase) buildRangeIntent(dto rawIntentDTO) assistant.ParsedIntent {
	kind := assistant.IntentKind(dto.Intent)
	switch kind {
	case assistant.KindCreate, assistant.KindUpdate, assistant.KindDelete:
	default:
		return errorIntent(missingDetailsMessage)
	}

	rng := assistant.DateRange{
		StartDate: uc.normalizeDate(dto.StartDate),
		EndDate:   uc.normalizeDate(dto.EndDate),
	}
	if dto.Title == "" || rng.StartDate == "" || rng.EndDate == "" {
		return errorIntent(missingDetailsMessage)
	}
	start, err := uc.dateMath.Day(rng.StartDate)
	if err != nil {
		return errorIntent(missingDetailsMessage)
	}
	end, err := uc.dateMath.Day(rng.EndDate)
	if err != nil || end.Before(start) {
		return errorIntent(missingDetailsMessage)
	}

	return assistant.ParsedIntent{
		Kind: kind,
		Descriptors: []assistant.EventDescriptor{
			{Title: dto.Title, Date: rng.StartDate, EventID: dto.EventID},
		},
		Range:    &rng,
		NewTitle: dto.NewTitle,
	}
}
