package usecase

import (
	"context"
	"strings"
	"testing"

	"serava-assistant/internal/assistant"
)

func TestExtractIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("single create with explicit time", func(t *testing.T) {
		uc, provider := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","events":[{"title":"Gym","date":"2025-06-02","time":"18:00"}]}`,
		})

		parsed, err := uc.extractIntent(ctx, "Schedule gym tomorrow at 6 PM", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindCreate {
			t.Fatalf("kind: %v", parsed.Kind)
		}
		if len(parsed.Descriptors) != 1 {
			t.Fatalf("descriptors: %d", len(parsed.Descriptors))
		}
		d := parsed.Descriptors[0]
		if d.Title != "Gym" || d.Date != "2025-06-02" || d.Time != "18:00" {
			t.Errorf("descriptor: %+v", d)
		}

		// Extraction must carry today's date into the instruction.
		req := provider.requests[0]
		if !strings.Contains(req.SystemInstruction.Parts[0].Text, "2025-06-01") {
			t.Error("instruction does not carry today's date")
		}
	})

	t.Run("missing time defaults to 09:00", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","events":[{"title":"Dentist","date":"2025-06-05"}]}`,
		})

		parsed, err := uc.extractIntent(ctx, "dentist on the 5th", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Descriptors[0].Time != "09:00" {
			t.Errorf("time: %q", parsed.Descriptors[0].Time)
		}
	})

	t.Run("month-day date gets the current year", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","events":[{"title":"Review","date":"06-20","time":"14:00"}]}`,
		})

		parsed, err := uc.extractIntent(ctx, "review on June 20", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Descriptors[0].Date != "2025-06-20" {
			t.Errorf("date: %q", parsed.Descriptors[0].Date)
		}
	})

	t.Run("batch create keeps descriptor order", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","events":[
				{"title":"Standup","date":"2025-06-02","time":"09:30"},
				{"title":"Lunch","date":"2025-06-02","time":"13:00"}
			]}`,
		})

		parsed, err := uc.extractIntent(ctx, "standup and lunch tomorrow", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(parsed.Descriptors) != 2 {
			t.Fatalf("descriptors: %d", len(parsed.Descriptors))
		}
		if parsed.Descriptors[0].Title != "Standup" || parsed.Descriptors[1].Title != "Lunch" {
			t.Errorf("order: %+v", parsed.Descriptors)
		}
	})

	t.Run("top-level single-event shape still works", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"delete","title":"Gym","date":"2025-06-02","eventId":"abc"}`,
		})

		parsed, err := uc.extractIntent(ctx, "delete gym", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindDelete || parsed.Descriptors[0].EventID != "abc" {
			t.Errorf("parsed: %+v", parsed)
		}
	})

	t.Run("dateless fetch targets the whole snapshot", func(t *testing.T) {
		for _, reply := range []string{
			`{"intent":"fetch","events":[]}`,
			`{"intent":"fetch"}`,
			`{"intent":"fetch","events":[{"date":""}]}`,
		} {
			uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{reply})

			parsed, err := uc.extractIntent(ctx, "what's on my calendar?", nil, false)
			if err != nil {
				t.Fatalf("reply %s: unexpected error: %v", reply, err)
			}
			if parsed.Kind != assistant.KindFetch {
				t.Errorf("reply %s: kind: %v (%s)", reply, parsed.Kind, parsed.ErrorMessage)
			}
			if len(parsed.Descriptors) != 0 {
				t.Errorf("reply %s: descriptors: %+v", reply, parsed.Descriptors)
			}
		}
	})

	t.Run("dated fetch keeps its day filter", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"fetch","events":[{"date":"2025-06-06"}]}`,
		})

		parsed, err := uc.extractIntent(ctx, "what's on Friday?", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindFetch {
			t.Fatalf("kind: %v", parsed.Kind)
		}
		if len(parsed.Descriptors) != 1 || parsed.Descriptors[0].Date != "2025-06-06" {
			t.Errorf("descriptors: %+v", parsed.Descriptors)
		}
	})

	t.Run("out-of-vocabulary intent becomes error kind", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"postpone","events":[{"title":"Gym","date":"2025-06-02","time":"18:00"}]}`,
		})

		parsed, err := uc.extractIntent(ctx, "postpone gym", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindError {
			t.Errorf("kind: %v", parsed.Kind)
		}
		if parsed.ErrorMessage == "" {
			t.Error("expected an error message")
		}
	})

	t.Run("model-declared error is preserved", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"error":"Missing required details"}`,
		})

		parsed, err := uc.extractIntent(ctx, "create something", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindError || parsed.ErrorMessage != "Missing required details" {
			t.Errorf("parsed: %+v", parsed)
		}
	})

	t.Run("unparseable reply becomes error kind", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			"no json here",
		})

		parsed, err := uc.extractIntent(ctx, "gym tomorrow", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindError {
			t.Errorf("kind: %v", parsed.Kind)
		}
	})

	t.Run("invalid date becomes error kind", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","events":[{"title":"Gym","date":"sometime","time":"18:00"}]}`,
		})

		parsed, err := uc.extractIntent(ctx, "gym sometime", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindError {
			t.Errorf("kind: %v", parsed.Kind)
		}
	})

	t.Run("schedule passes the payload through untouched", func(t *testing.T) {
		reply := `{"intent":"schedule","recommendation":"Friday 15:00 is free","conflicts":["Thursday is packed"]}`
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{reply})

		parsed, err := uc.extractIntent(ctx, "find me a slot for a haircut", nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindSchedule {
			t.Fatalf("kind: %v", parsed.Kind)
		}
		if string(parsed.Schedule) != reply {
			t.Errorf("schedule payload: %s", parsed.Schedule)
		}
	})

	t.Run("range extraction", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","title":"Vacation","startDate":"2025-06-09","endDate":"2025-06-13"}`,
		})

		parsed, err := uc.extractIntent(ctx, "block next week for vacation", nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !parsed.IsRange() {
			t.Fatal("expected a range intent")
		}
		if parsed.Range.StartDate != "2025-06-09" || parsed.Range.EndDate != "2025-06-13" {
			t.Errorf("range: %+v", parsed.Range)
		}
		if parsed.Descriptors[0].Title != "Vacation" {
			t.Errorf("descriptor: %+v", parsed.Descriptors[0])
		}
	})

	t.Run("range with end before start becomes error kind", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"create","title":"Vacation","startDate":"2025-06-13","endDate":"2025-06-09"}`,
		})

		parsed, err := uc.extractIntent(ctx, "vacation", nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindError {
			t.Errorf("kind: %v", parsed.Kind)
		}
	})

	t.Run("range fetch is out of vocabulary", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, []string{
			`{"intent":"fetch","title":"Vacation","startDate":"2025-06-09","endDate":"2025-06-13"}`,
		})

		parsed, err := uc.extractIntent(ctx, "show vacation", nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Kind != assistant.KindError {
			t.Errorf("kind: %v", parsed.Kind)
		}
	})
}
