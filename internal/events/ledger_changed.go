package events

import "time"

const (
	LedgerChangedTopic     = "sitebooks.ledger.changed.v1"
	LedgerChangedEventType = "ledger_changed"
)

// LedgerChangedEvent announces that a ledger row touching ProjectID on Date
// was created, edited or removed. Daily summaries from Date onward are stale.
type LedgerChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	ProjectID  string    `json:"project_id"`
	Date       string    `json:"date"`
	Source     string    `json:"source"`
	SourceID   string    `json:"source_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
