package usecase

import (
	"strings"
	"testing"
	"time"

	"serava-assistant/pkg/gcalendar"
)

func TestSanitizeJSONResponse(t *testing.T) {
	t.Run("plain object passes through", func(t *testing.T) {
		got := sanitizeJSONResponse(`{"intent":"create"}`)
		if got != `{"intent":"create"}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("strips json code fence", func(t *testing.T) {
		raw := "```json\n{\"intent\":\"create\"}\n```"
		got := sanitizeJSONResponse(raw)
		if got != `{"intent":"create"}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("strips bare code fence", func(t *testing.T) {
		raw := "```\n{\"isCalendarTask\": true}\n```"
		got := sanitizeJSONResponse(raw)
		if got != `{"isCalendarTask": true}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("drops surrounding prose", func(t *testing.T) {
		raw := `Sure! Here is the JSON you asked for: {"intent":"fetch","events":[{"date":"2025-06-06"}]} Hope that helps.`
		got := sanitizeJSONResponse(raw)
		if got != `{"intent":"fetch","events":[{"date":"2025-06-06"}]}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("handles braces inside strings", func(t *testing.T) {
		raw := `{"response":"use {curly} braces"} trailing`
		got := sanitizeJSONResponse(raw)
		if got != `{"response":"use {curly} braces"}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no json at all", func(t *testing.T) {
		got := sanitizeJSONResponse("I could not produce output")
		if strings.Contains(got, "{") {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderSnapshot(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")

	t.Run("empty snapshot", func(t *testing.T) {
		if got := renderSnapshot(nil); got != "(no upcoming events)" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("renders id, time and recurrence", func(t *testing.T) {
		events := []gcalendar.Event{
			{ID: "abc", Summary: "Gym", Start: time.Date(2025, 6, 2, 18, 0, 0, 0, loc)},
			{ID: "def", Summary: "Standup", Start: time.Date(2025, 6, 3, 9, 30, 0, 0, loc), RecurringEventID: "series-1"},
			{ID: "ghi", Summary: "Vacation", Start: time.Date(2025, 6, 4, 0, 0, 0, 0, loc), AllDay: true},
		}
		got := renderSnapshot(events)

		lines := strings.Split(got, "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
		}
		if lines[0] != "- Gym at 2025-06-02 18:00 (ID: abc)" {
			t.Errorf("line 0: %q", lines[0])
		}
		if lines[1] != "- Standup at 2025-06-03 09:30 (ID: def) (recurring)" {
			t.Errorf("line 1: %q", lines[1])
		}
		if lines[2] != "- Vacation at 2025-06-04 (ID: ghi)" {
			t.Errorf("line 2: %q", lines[2])
		}
	})
}

func TestNormalizeDate(t *testing.T) {
	uc, _ := newTestUseCase(&mockCalendar{}, &mockAuthUC{token: "tok"}, nil)

	t.Run("fills current year", func(t *testing.T) {
		if got := uc.normalizeDate("06-15"); got != "2025-06-15" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("full date untouched", func(t *testing.T) {
		if got := uc.normalizeDate("2024-12-31"); got != "2024-12-31" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("empty untouched", func(t *testing.T) {
		if got := uc.normalizeDate(""); got != "" {
			t.Errorf("got %q", got)
		}
	})
}
