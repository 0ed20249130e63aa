package consumer

import (
	"context"
	"encoding/json"

	"github.com/abangiyan/hongwei-crew-manager/internal/employee"
	"github.com/abangiyan/hongwei-crew-manager/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle membuang cache opsi karyawan cabang terkait
// setiap ada karyawan baru, supaya dropdown wizard di instance lain
// tidak menyajikan daftar basi.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		cacheKey := employee.GetEmployeeOptionsKey(event.BranchID)
		if err := rdb.Del(ctx, cacheKey).Err(); err != nil {
			log.Error("invalidate employee options cache failed",
				zap.String("key", cacheKey),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee options cache invalidated",
			zap.String("employee_id", event.EmployeeID),
			zap.String("branch_id", event.BranchID),
		)
	}
}
