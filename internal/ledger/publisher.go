// Package ledger announces ledger writes so the daily summary chain of the
// affected project can be rebuilt asynchronously.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-sitebooks/internal/events"
	"go-sitebooks/internal/messaging/kafka"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"

	"github.com/google/uuid"
)

const (
	SourceAttendance          = "attendance"
	SourceWorkerTransfer      = "worker_transfer"
	SourcePurchase            = "purchase"
	SourceSupplierPayment     = "supplier_payment"
	SourceFundTransfer        = "fund_transfer"
	SourceProjectFundTransfer = "project_fund_transfer"
)

type Change struct {
	CompanyID string
	ProjectID string
	Date      time.Time
	Source    string
	SourceID  string
}

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, tx *sql.Tx, changes []Change) error
}

type outboxPublisher struct {
	outbox kafka.OutboxRepository
}

// NewOutboxPublisher writes one outbox row per distinct (project, date) in
// the caller's transaction.
func NewOutboxPublisher(outbox kafka.OutboxRepository) Publisher {
	return &outboxPublisher{outbox: outbox}
}

func (p *outboxPublisher) Publish(ctx context.Context, tx *sql.Tx, changes []Change) error {
	rid := contextutil.GetRequestID(ctx)
	repo := p.outbox.WithTx(tx)

	for _, ch := range Dedup(changes) {
		event := events.LedgerChangedEvent{
			EventType:  events.LedgerChangedEventType,
			RequestID:  rid,
			CompanyID:  ch.CompanyID,
			ProjectID:  ch.ProjectID,
			Date:       dateutil.Format(ch.Date),
			Source:     ch.Source,
			SourceID:   ch.SourceID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := repo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "project",
			AggregateID:   ch.ProjectID,
			EventType:     event.EventType,
			Topic:         events.LedgerChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Dedup keeps the first change of every (project, date) pair.
func Dedup(changes []Change) []Change {
	seen := make(map[string]struct{}, len(changes))
	out := make([]Change, 0, len(changes))
	for _, ch := range changes {
		if ch.ProjectID == "" {
			continue
		}
		key := ch.ProjectID + "|" + dateutil.Format(ch.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ch)
	}
	return out
}
