package ledger_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-sitebooks/internal/events"
	"go-sitebooks/internal/ledger"
	"go-sitebooks/internal/messaging/kafka"
	kafkaMock "go-sitebooks/internal/messaging/kafka/mock"
	"go-sitebooks/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOutboxPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	pub := ledger.NewOutboxPublisher(outbox)

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)

	var created []kafka.OutboxEvent
	outbox.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			created = append(created, e)
			return nil
		}).Times(2)

	err := pub.Publish(ctx, nil, []ledger.Change{
		{CompanyID: "c1", ProjectID: "p1", Date: day, Source: ledger.SourceAttendance, SourceID: "a1"},
		{CompanyID: "c1", ProjectID: "p1", Date: day, Source: ledger.SourceAttendance, SourceID: "a2"},
		{CompanyID: "c1", ProjectID: "p2", Date: day, Source: ledger.SourceAttendance, SourceID: "a3"},
	})
	assert.NoError(t, err)
	assert.Len(t, created, 2)

	first := created[0]
	assert.Equal(t, events.LedgerChangedTopic, first.Topic)
	assert.Equal(t, "p1", first.AggregateID)
	assert.Equal(t, "req-9", first.RequestID)
	assert.Equal(t, kafka.OutboxStatusPending, first.Status)

	var evt events.LedgerChangedEvent
	assert.NoError(t, json.Unmarshal(first.Payload, &evt))
	assert.Equal(t, "2024-03-05", evt.Date)
	assert.Equal(t, "c1", evt.CompanyID)
	assert.Equal(t, "a1", evt.SourceID)
}

func TestDedup_SkipsEmptyProject(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	got := ledger.Dedup([]ledger.Change{
		{ProjectID: "", Date: day},
		{ProjectID: "p1", Date: day},
		{ProjectID: "p1", Date: day.AddDate(0, 0, 1)},
	})
	assert.Len(t, got, 2)
}
