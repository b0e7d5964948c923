package events

import (
	"time"

	"github.com/spec-kit/driver-registry/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLookupPerformed EventType = "lookup_performed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LookupPerformedPayload describes one terminal lookup outcome.
type LookupPerformedPayload struct {
	RequestID  string               `json:"request_id"`
	Identifier string               `json:"identifier"`
	Outcome    domain.LookupOutcome `json:"outcome"`
	ErrorCode  string               `json:"error_code,omitempty"`
	DurationMs int64                `json:"duration_ms"`
	SheetName  string               `json:"sheet_name,omitempty"`
	HeaderRow  int                  `json:"header_row,omitempty"`
	Forced     bool                 `json:"forced,omitempty"`
}
