package events

import "time"

// Event is the contract for everything published on the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "ANALYSIS_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the canonical Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event codes emitted by the analysis system.
const (
	TypeAnalysisStarted   = "ANALYSIS_STARTED"
	TypeAnalysisCompleted = "ANALYSIS_COMPLETED"
	TypeAnalysisFailed    = "ANALYSIS_FAILED"
	TypeSyncCompleted     = "SYNC_COMPLETED"
	TypeReportReady       = "REPORT_READY"
)

// New builds a BaseEvent stamped with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}
