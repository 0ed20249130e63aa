package events

import "time"

const LeaveRequestedTopic = "crew.leave.requested.v1"

type LeaveRequestedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveDate  string    `json:"leave_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
