package consumer

import (
	"context"
	"encoding/json"

	"go-sitebooks/internal/events"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/statement"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeStatementExports(
	ctx context.Context,
	reader MessageReader,
	statementService statement.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.statement_export")
	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) bool {
		return handleStatementExport(ctx, msg, statementService, log)
	})
}

func handleStatementExport(ctx context.Context, msg kafkago.Message, statementService statement.Service, log *zap.Logger) bool {
	var event events.StatementExportRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode statement export event failed", zap.Error(err))
		return true
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)
	ctx = contextutil.WithUserID(ctx, event.RequestedBy)

	if err := statementService.ProcessExport(ctx, event.CompanyID, event.ExportID); err != nil {
		log.Error("process statement export failed",
			zap.String("export_id", event.ExportID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return false
	}

	log.Info("statement export processed",
		zap.String("export_id", event.ExportID),
		zap.String("company_id", event.CompanyID),
	)
	return true
}
