package datemath

import (
	"fmt"
	"time"
)

// Parser anchors all date and day-of-calendar math to one fixed timezone.
// Day comparisons on raw UTC values are a classic off-by-one source, so every
// helper here converts into the parser's location first.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's fixed timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// At combines a date ("2006-01-02") and a clock time ("15:04") into an
// instant in the parser's timezone.
func (p *Parser) At(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// Day parses a date string ("2006-01-02") as midnight in the parser's timezone.
func (p *Parser) Day(date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// SameDay reports whether two instants fall on the same calendar day in the
// parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	a = a.In(p.location)
	b = b.In(p.location)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight at the start of the given instant's day.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the given instant's day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// FormatDay renders an instant as its calendar day in the parser's timezone.
func (p *Parser) FormatDay(t time.Time) string {
	return t.In(p.location).Format("2006-01-02")
}
