package events

import "time"

const (
	StatementExportRequestedTopic     = "sitebooks.statement.export.requested.v1"
	StatementExportRequestedEventType = "statement_export_requested"
)

type StatementExportRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	ExportID    string    `json:"export_id"`
	CompanyID   string    `json:"company_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
