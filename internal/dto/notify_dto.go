package dto

import "time"

// NotificationMessage is one progress or lifecycle update pushed to the bus
// and kept in the per-user recent list.
type NotificationMessage struct {
	Type       string                 `json:"type"`
	Message    string                 `json:"message"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}
