package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-sitebooks/internal/dailysummary"
	dailysummaryerrors "go-sitebooks/internal/dailysummary/errors"
	dailysummaryMock "go-sitebooks/internal/dailysummary/mock"
	"go-sitebooks/internal/events"
	statementMock "go-sitebooks/internal/statement/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func message(t *testing.T, v any) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return kafkago.Message{Value: b}
}

func TestHandleLedgerChanged(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	event := events.LedgerChangedEvent{
		EventType: events.LedgerChangedEventType,
		CompanyID: "c1",
		ProjectID: "p1",
		Date:      "2024-06-03",
		Source:    "attendance",
	}

	t.Run("rebuilds from the event date", func(t *testing.T) {
		svc := dailysummaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Rebuild(gomock.Any(), "c1", "p1", from).Return(dailysummary.RebuildResult{Recomputed: 4}, nil)

		assert.True(t, handleLedgerChanged(ctx, message(t, event), svc, zap.NewNop(), 0))
	})

	t.Run("retries while locked", func(t *testing.T) {
		svc := dailysummaryMock.NewMockService(gomock.NewController(t))
		gomock.InOrder(
			svc.EXPECT().Rebuild(gomock.Any(), "c1", "p1", from).Return(dailysummary.RebuildResult{}, dailysummaryerrors.ErrRebuildInProgress),
			svc.EXPECT().Rebuild(gomock.Any(), "c1", "p1", from).Return(dailysummary.RebuildResult{}, nil),
		)

		assert.True(t, handleLedgerChanged(ctx, message(t, event), svc, zap.NewNop(), time.Millisecond))
	})

	t.Run("gives up after repeated lock contention", func(t *testing.T) {
		svc := dailysummaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Rebuild(gomock.Any(), "c1", "p1", from).
			Return(dailysummary.RebuildResult{}, dailysummaryerrors.ErrRebuildInProgress).Times(rebuildAttempts)

		assert.False(t, handleLedgerChanged(ctx, message(t, event), svc, zap.NewNop(), time.Millisecond))
	})

	t.Run("deleted project is skipped", func(t *testing.T) {
		svc := dailysummaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Rebuild(gomock.Any(), "c1", "p1", from).Return(dailysummary.RebuildResult{}, dailysummaryerrors.ErrProjectNotFound)

		assert.True(t, handleLedgerChanged(ctx, message(t, event), svc, zap.NewNop(), 0))
	})

	t.Run("database error is not committed", func(t *testing.T) {
		svc := dailysummaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Rebuild(gomock.Any(), "c1", "p1", from).Return(dailysummary.RebuildResult{}, errors.New("conn reset"))

		assert.False(t, handleLedgerChanged(ctx, message(t, event), svc, zap.NewNop(), 0))
	})

	t.Run("malformed payloads are dropped", func(t *testing.T) {
		svc := dailysummaryMock.NewMockService(gomock.NewController(t))

		assert.True(t, handleLedgerChanged(ctx, kafkago.Message{Value: []byte("{")}, svc, zap.NewNop(), 0))

		bad := event
		bad.Date = "03/06/2024"
		assert.True(t, handleLedgerChanged(ctx, message(t, bad), svc, zap.NewNop(), 0))
	})
}

func TestHandleStatementExport(t *testing.T) {
	ctx := context.Background()
	event := events.StatementExportRequestedEvent{
		EventType: events.StatementExportRequestedEventType,
		ExportID:  "e1",
		CompanyID: "c1",
	}

	t.Run("processed", func(t *testing.T) {
		svc := statementMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ProcessExport(gomock.Any(), "c1", "e1").Return(nil)
		assert.True(t, handleStatementExport(ctx, message(t, event), svc, zap.NewNop()))
	})

	t.Run("retried on error", func(t *testing.T) {
		svc := statementMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ProcessExport(gomock.Any(), "c1", "e1").Return(errors.New("db down"))
		assert.False(t, handleStatementExport(ctx, message(t, event), svc, zap.NewNop()))
	})
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func TestRun_CommitsHandledMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &fakeReader{
		msgs:   []kafkago.Message{{Offset: 1}, {Offset: 2}, {Offset: 3}},
		cancel: cancel,
	}

	run(ctx, reader, zap.NewNop(), func(_ context.Context, msg kafkago.Message) bool {
		return msg.Offset != 2
	})

	require.Len(t, reader.committed, 2)
	assert.Equal(t, int64(1), reader.committed[0].Offset)
	assert.Equal(t, int64(3), reader.committed[1].Offset)
}
