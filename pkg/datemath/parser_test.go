package datemath_test

import (
	"testing"
	"time"

	"serava-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	t.Run("valid timezone", func(t *testing.T) {
		p, err := datemath.NewParser("Asia/Kolkata")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Location().String() != "Asia/Kolkata" {
			t.Errorf("location: %v", p.Location())
		}
	})

	t.Run("invalid timezone", func(t *testing.T) {
		if _, err := datemath.NewParser("Mars/Olympus"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestAt(t *testing.T) {
	p, _ := datemath.NewParser("Asia/Kolkata")

	got, err := p.At("2025-06-02", "18:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 2, 18, 0, 0, 0, p.Location())
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := p.At("2025-06-02", "6pm"); err == nil {
		t.Error("expected an error for a non HH:mm clock")
	}
}

func TestSameDay(t *testing.T) {
	p, _ := datemath.NewParser("Asia/Kolkata")

	t.Run("same local day across representations", func(t *testing.T) {
		a := time.Date(2025, 6, 2, 1, 0, 0, 0, p.Location())
		b := a.UTC() // 2025-06-01 19:30 UTC, still June 2 locally
		if !p.SameDay(a, b) {
			t.Error("expected same local day")
		}
	})

	t.Run("utc day differs from local day", func(t *testing.T) {
		// 23:30 local on June 1 is June 2 in UTC+6 but must stay June 1 here.
		late := time.Date(2025, 6, 1, 23, 30, 0, 0, p.Location())
		day2, _ := p.Day("2025-06-02")
		if p.SameDay(late, day2) {
			t.Error("late evening leaked into the next day")
		}
		day1, _ := p.Day("2025-06-01")
		if !p.SameDay(late, day1) {
			t.Error("late evening lost its own day")
		}
	})
}

func TestDayBounds(t *testing.T) {
	p, _ := datemath.NewParser("Asia/Kolkata")

	at := time.Date(2025, 6, 2, 15, 45, 0, 0, p.Location())
	start := p.StartOfDay(at)
	end := p.EndOfDay(at)

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("start: %v", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("end: %v", end)
	}
	if !p.SameDay(start, end) {
		t.Error("bounds fell on different days")
	}
}

func TestFormatDay(t *testing.T) {
	p, _ := datemath.NewParser("Asia/Kolkata")

	// 20:00 UTC on June 1 is already June 2 locally.
	at := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	if got := p.FormatDay(at); got != "2025-06-02" {
		t.Errorf("got %q", got)
	}
}
