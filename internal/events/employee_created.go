package events

import "time"

const EmployeeCreatedTopic = "crew.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	BranchID   string    `json:"branch_id"`
	TeamID     string    `json:"team_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
