package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-sitebooks/internal/dailysummary"
	dailysummaryerrors "go-sitebooks/internal/dailysummary/errors"
	"go-sitebooks/internal/events"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	rebuildAttempts = 3
	rebuildBackoff  = 2 * time.Second
)

// ConsumeLedgerChanges rebuilds the daily summary chain of the project named
// by each ledger_changed event, starting at the event's date.
func ConsumeLedgerChanges(
	ctx context.Context,
	reader MessageReader,
	summaryService dailysummary.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.ledger_changed")
	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) bool {
		return handleLedgerChanged(ctx, msg, summaryService, log, rebuildBackoff)
	})
}

func handleLedgerChanged(
	ctx context.Context,
	msg kafkago.Message,
	summaryService dailysummary.Service,
	log *zap.Logger,
	backoff time.Duration,
) bool {
	var event events.LedgerChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode ledger_changed event failed", zap.Error(err))
		return true
	}

	from, err := dateutil.Parse("date", event.Date)
	if err != nil {
		log.Error("ledger_changed event has invalid date",
			zap.String("project_id", event.ProjectID),
			zap.String("date", event.Date),
		)
		return true
	}

	l := log.With(
		zap.String("request_id", event.RequestID),
		zap.String("company_id", event.CompanyID),
		zap.String("project_id", event.ProjectID),
		zap.String("source", event.Source),
	)
	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)
	ctx = contextutil.WithLogger(ctx, l)

	for attempt := 1; ; attempt++ {
		res, err := summaryService.Rebuild(ctx, event.CompanyID, event.ProjectID, from)
		switch {
		case err == nil:
			l.Info("daily summaries rebuilt",
				zap.String("from", event.Date),
				zap.Int("recomputed", res.Recomputed),
				zap.Int64("removed", res.Removed),
			)
			return true
		case errors.Is(err, dailysummaryerrors.ErrProjectNotFound):
			l.Warn("project gone, skipping ledger_changed event")
			return true
		case errors.Is(err, dailysummaryerrors.ErrRebuildInProgress) && attempt < rebuildAttempts:
			l.Info("rebuild in progress, retrying", zap.Int("attempt", attempt))
			if !sleep(ctx, backoff) {
				return false
			}
		default:
			l.Error("rebuild daily summaries failed", zap.Int("attempt", attempt), zap.Error(err))
			return false
		}
	}
}
