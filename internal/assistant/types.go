package assistant

import (
	"encoding/json"

	"serava-assistant/pkg/gcalendar"
)

// IntentKind is the fixed vocabulary of calendar operations.
type IntentKind string

const (
	KindCreate   IntentKind = "create"
	KindUpdate   IntentKind = "update"
	KindDelete   IntentKind = "delete"
	KindFetch    IntentKind = "fetch"
	KindSchedule IntentKind = "schedule"
	KindGeneral  IntentKind = "general"
	KindError    IntentKind = "error"
)

// EventDescriptor is one user-referenced target event prior to id resolution.
type EventDescriptor struct {
	Title   string
	Date    string // YYYY-MM-DD
	Time    string // HH:mm
	EventID string // set when the model lifted an id from the snapshot context
}

// DateRange bounds a range-shaped operation by start and end calendar days.
type DateRange struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// ParsedIntent is the extractor's immutable output for one prompt.
type ParsedIntent struct {
	Kind        IntentKind
	Descriptors []EventDescriptor
	Range       *DateRange // set only for range-shaped intents
	NewTitle    string     // range update: replacement title
	Reply       string     // general-chat reply text

	// Schedule carries the model's recommendation/conflict payload untouched.
	Schedule json.RawMessage

	ErrorMessage string // set when Kind == KindError
}

// IsRange reports whether the intent was extracted with the range schema.
func (p ParsedIntent) IsRange() bool {
	return p.Range != nil
}

// Resolution pairs a descriptor with the snapshot event it matched.
type Resolution struct {
	Descriptor EventDescriptor
	Event      gcalendar.Event
}

// OperationResult is one normalized outcome of a dispatched operation.
type OperationResult struct {
	Action  string            `json:"action"`
	Event   *gcalendar.Event  `json:"event,omitempty"`
	Events  []gcalendar.Event `json:"events,omitempty"`
	Payload json.RawMessage   `json:"payload,omitempty"`
	Message string            `json:"message,omitempty"`
}

// PromptInput is the inbound natural-language request.
type PromptInput struct {
	Prompt string
}

// PromptOutput is the normalized result of one handled prompt.
type PromptOutput struct {
	Parsed  ParsedIntent
	Results []OperationResult
}
