package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-sitebooks/internal/messaging/kafka"
	kafkaMock "go-sitebooks/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failOn  map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		for _, h := range m.Headers {
			if h.Key == "outbox_id" {
				if err, ok := w.failOn[string(h.Value)]; ok {
					return err
				}
			}
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	pending := []kafka.OutboxEvent{
		{ID: "evt-1", RequestID: "req-1", AggregateID: "project-1", EventType: "ledger_changed", Topic: "ledger", Payload: []byte("a")},
		{ID: "evt-2", AggregateID: "project-2", EventType: "ledger_changed", Topic: "ledger", Payload: []byte("b")},
	}
	writer := &fakeWriter{failOn: map[string]error{"evt-2": errors.New("broker down")}}

	repo.EXPECT().ListPending(ctx, batchSize).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "evt-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "evt-2", "broker down").Return(nil)

	sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, writer.written, 1)

	msg := writer.written[0]
	assert.Equal(t, "ledger", msg.Topic)
	assert.Equal(t, []byte("project-1"), msg.Key)
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(gomock.Any(), batchSize).Return(nil, errors.New("db down"))

	_, err := processPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
}

func TestPurgeSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()
	before := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().PurgeSent(ctx, before).Return(int64(12), nil)
	assert.Equal(t, int64(12), purgeSent(ctx, repo, zap.NewNop(), before))

	repo.EXPECT().PurgeSent(ctx, before).Return(int64(0), errors.New("db down"))
	assert.Equal(t, int64(0), purgeSent(ctx, repo, zap.NewNop(), before))
}
