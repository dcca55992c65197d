package http

import "serava-assistant/pkg/gcalendar"

type eventItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	AllDay    bool   `json:"all_day,omitempty"`
	Link      string `json:"link,omitempty"`
	Recurring bool   `json:"recurring,omitempty"`
}

func newEventItem(ev gcalendar.Event) eventItem {
	layout := "2006-01-02 15:04"
	if ev.AllDay {
		layout = "2006-01-02"
	}
	return eventItem{
		ID:        ev.ID,
		Title:     ev.Summary,
		Start:     ev.Start.Format(layout),
		End:       ev.End.Format(layout),
		AllDay:    ev.AllDay,
		Link:      ev.HTMLLink,
		Recurring: ev.Recurring || ev.RecurringEventID != "",
	}
}

func newEventItems(events []gcalendar.Event) []eventItem {
	items := make([]eventItem, len(events))
	for i, ev := range events {
		items[i] = newEventItem(ev)
	}
	return items
}
