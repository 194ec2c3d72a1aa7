package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sitebooks/internal/messaging/kafka"
	"go-sitebooks/internal/messaging/kafka/producer"
	"go-sitebooks/internal/shared/connection"
	"go-sitebooks/internal/shared/env"

	"go.uber.org/zap"
)

func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(connection.DSN(), connection.PoolConfigFromEnv(), 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := env.String("KAFKA_BROKER", "")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		env.Duration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	)
	go producer.PurgeSentEvents(
		ctx,
		outboxRepo,
		logger,
		env.Duration("OUTBOX_RETENTION", 7*24*time.Hour),
		env.Duration("OUTBOX_PURGE_INTERVAL", time.Hour),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
