package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-sitebooks/internal/dailysummary"
	"go-sitebooks/internal/events"
	"go-sitebooks/internal/messaging/kafka"
	"go-sitebooks/internal/messaging/kafka/consumer"
	"go-sitebooks/internal/shared/connection"
	"go-sitebooks/internal/shared/counter"
	"go-sitebooks/internal/shared/env"
	"go-sitebooks/internal/statement"
	"go-sitebooks/internal/storage"

	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	rdb, err := connectRedis()
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.NewFromEnv(ctx)
	if err != nil {
		return err
	}

	summaryService := dailysummary.NewService(sqlDB, dailysummary.NewRepository(gormDB), summaryLocker(rdb), logger)
	statementService := statement.NewService(
		sqlDB,
		statement.NewRepository(gormDB),
		summaryService,
		counter.NewRepository(gormDB),
		kafka.NewOutboxRepository(gormDB),
		store,
		rdb,
		logger,
	)

	ledgerReader := connection.NewKafkaReader(kafkaBroker, events.LedgerChangedTopic, "go-sitebooks-daily-summary")
	defer ledgerReader.Close()
	exportReader := connection.NewKafkaReader(kafkaBroker, events.StatementExportRequestedTopic, "go-sitebooks-statement-export")
	defer exportReader.Close()

	go consumer.ConsumeLedgerChanges(ctx, ledgerReader, summaryService, logger)
	go consumer.ConsumeStatementExports(ctx, exportReader, statementService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
