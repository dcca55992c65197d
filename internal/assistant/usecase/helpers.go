package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"serava-assistant/pkg/gcalendar"
	"serava-assistant/pkg/llmprovider"
)

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// sanitizeJSONResponse strips markdown code fences and any prose around the
// first JSON object so the reply can be unmarshalled directly.
func sanitizeJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)

	if m := jsonFenceRe.FindStringSubmatch(s); len(m) == 2 {
		s = strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}

	open := s[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

// renderSnapshot formats the snapshot for prompt context, one line per event.
func renderSnapshot(events []gcalendar.Event) string {
	if len(events) == 0 {
		return "(no upcoming events)"
	}

	var b strings.Builder
	for _, ev := range events {
		b.WriteString("- ")
		b.WriteString(ev.Summary)
		b.WriteString(" at ")
		if ev.AllDay {
			b.WriteString(ev.Start.Format("2006-01-02"))
		} else {
			b.WriteString(ev.Start.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(&b, " (ID: %s)", ev.ID)
		if ev.Recurring || ev.RecurringEventID != "" {
			b.WriteString(" (recurring)")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// normalizeDate fills in the current year for model replies shaped "MM-DD".
func (uc *implUseCase) normalizeDate(date string) string {
	if len(date) == 5 && date[2] == '-' {
		return fmt.Sprintf("%04d-%s", uc.now().In(uc.dateMath.Location()).Year(), date)
	}
	return date
}

func (uc *implUseCase) today() string {
	return uc.dateMath.FormatDay(uc.now())
}

func systemInstruction(text string) *llmprovider.Message {
	return &llmprovider.Message{
		Role:  llmprovider.RoleSystem,
		Parts: []llmprovider.Part{{Text: text}},
	}
}

func userMessage(text string) []llmprovider.Message {
	return []llmprovider.Message{
		{
			Role:  llmprovider.RoleUser,
			Parts: []llmprovider.Part{{Text: text}},
		},
	}
}
