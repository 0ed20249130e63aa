package events

import "time"

const ScheduleBatchCreatedTopic = "crew.schedule.batch.created.v1"

type ScheduleBatchCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	BatchRef      string    `json:"batch_ref"`
	BranchID      string    `json:"branch_id"`
	ScheduleDate  string    `json:"schedule_date"`
	RowCount      int       `json:"row_count"`
	OvertimeCount int       `json:"overtime_count"`
	CreatedBy     string    `json:"created_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
