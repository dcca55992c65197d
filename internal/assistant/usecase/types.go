package usecase

// classifyDTO is the wire shape of the classification reply.
// IsCalendarTask is a pointer so a missing field is distinguishable from false.
type classifyDTO struct {
	IsCalendarTask *bool  `json:"isCalendarTask"`
	Response       string `json:"response"`
}

type rangeClassifyDTO struct {
	IsRangeQuery *bool `json:"isRangeQuery"`
}

type rawEventDTO struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	EventID string `json:"eventId"`
}

// rawIntentDTO is the union of the point and range extraction schemas.
type rawIntentDTO struct {
	Intent string `json:"intent"`
	Error  string `json:"error"`

	Events []rawEventDTO `json:"events"`

	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	EventID   string `json:"eventId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	NewTitle  string `json:"newTitle"`
}
