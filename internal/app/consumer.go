package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abangiyan/hongwei-crew-manager/internal/bootstrap"
	"github.com/abangiyan/hongwei-crew-manager/internal/events"
	"github.com/abangiyan/hongwei-crew-manager/internal/messaging/kafka/consumer"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/connection"

	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	batchReader := connection.NewKafkaReader(
		kafkaBroker,
		events.ScheduleBatchCreatedTopic,
		"crew-manager-schedule-audit",
	)
	defer batchReader.Close()

	lifecycleReader := connection.NewKafkaReader(
		kafkaBroker,
		events.EmployeeCreatedTopic,
		"crew-manager-employee-cache",
	)
	defer lifecycleReader.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeScheduleBatchCreated(ctx, batchReader, auditLogger, logger)
	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, redisClient, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
