package http

import (
	"encoding/json"

	"serava-assistant/internal/assistant"
	"serava-assistant/pkg/gcalendar"
)

type eventItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	AllDay    bool   `json:"all_day,omitempty"`
	Link      string `json:"link,omitempty"`
	Recurring bool   `json:"recurring,omitempty"`
}

type descriptorItem struct {
	Title   string `json:"title,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	EventID string `json:"event_id,omitempty"`
}

type parsedItem struct {
	Intent      string           `json:"intent"`
	Events      []descriptorItem `json:"events,omitempty"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	NewTitle    string           `json:"new_title,omitempty"`
	Response    string           `json:"response,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type resultItem struct {
	Action  string          `json:"action"`
	Event   *eventItem      `json:"event,omitempty"`
	Events  []eventItem     `json:"events,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
}

type promptResp struct {
	Parsed  parsedItem   `json:"parsed"`
	Results []resultItem `json:"results,omitempty"`
}

func newEventItem(ev gcalendar.Event) eventItem {
	item := eventItem{
		ID:        ev.ID,
		Title:     ev.Summary,
		AllDay:    ev.AllDay,
		Link:      ev.HTMLLink,
		Recurring: ev.Recurring || ev.RecurringEventID != "",
	}
	layout := "2006-01-02 15:04"
	if ev.AllDay {
		layout = "2006-01-02"
	}
	item.Start = ev.Start.Format(layout)
	item.End = ev.End.Format(layout)
	return item
}

func newPromptResp(out assistant.PromptOutput) promptResp {
	parsed := parsedItem{
		Intent:   string(out.Parsed.Kind),
		Response: out.Parsed.Reply,
		NewTitle: out.Parsed.NewTitle,
		Error:    out.Parsed.ErrorMessage,
	}
	for _, d := range out.Parsed.Descriptors {
		parsed.Events = append(parsed.Events, descriptorItem{
			Title:   d.Title,
			Date:    d.Date,
			Time:    d.Time,
			EventID: d.EventID,
		})
	}
	if out.Parsed.IsRange() {
		parsed.StartDate = out.Parsed.Range.StartDate
		parsed.EndDate = out.Parsed.Range.EndDate
	}

	resp := promptResp{Parsed: parsed}
	for _, r := range out.Results {
		item := resultItem{
			Action:  r.Action,
			Payload: r.Payload,
			Message: r.Message,
		}
		if r.Event != nil {
			ev := newEventItem(*r.Event)
			item.Event = &ev
		}
		for _, ev := range r.Events {
			item.Events = append(item.Events, newEventItem(ev))
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}
