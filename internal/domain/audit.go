package domain

import "time"

// LookupOutcome enumerates terminal states of a lookup request.
type LookupOutcome string

const (
	LookupOutcomeFound    LookupOutcome = "FOUND"
	LookupOutcomeNotFound LookupOutcome = "NOT_FOUND"
	LookupOutcomeError    LookupOutcome = "ERROR"
)

// LookupAudit is one row of the optional lookup audit trail.
type LookupAudit struct {
	ID         int64
	RequestID  string
	Identifier string
	Outcome    LookupOutcome
	ErrorCode  string
	DurationMs int64
	CreatedAt  time.Time
}
