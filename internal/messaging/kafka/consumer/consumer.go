package consumer

import (
	"context"
	"encoding/json"

	"github.com/abangiyan/hongwei-crew-manager/internal/bootstrap"
	"github.com/abangiyan/hongwei-crew-manager/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeScheduleBatchCreated mencatat jejak audit tiap batch jadwal
// yang masuk, termasuk jumlah baris lemburnya, untuk laporan operasional.
func ConsumeScheduleBatchCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.schedule_batch")
	log.Info("schedule batch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("schedule batch consumer stopped")
				return
			}
			log.Error("fetch schedule batch message failed", zap.Error(err))
			continue
		}

		var event events.ScheduleBatchCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode schedule_batch_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "schedule.batch.created",
			Message: "schedule batch persisted",
			Meta: map[string]any{
				"batch_ref":      event.BatchRef,
				"branch_id":      event.BranchID,
				"schedule_date":  event.ScheduleDate,
				"row_count":      event.RowCount,
				"overtime_count": event.OvertimeCount,
				"created_by":     event.CreatedBy,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit schedule batch message failed", zap.Error(err))
			continue
		}

		log.Info("schedule batch audited",
			zap.String("batch_ref", event.BatchRef),
			zap.Int("row_count", event.RowCount),
			zap.Int("overtime_count", event.OvertimeCount),
		)
	}
}
