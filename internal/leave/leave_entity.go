package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ISOWeek disimpan sebagai kolom sendiri dengan index unik per karyawan,
// jadi batas satu cuti per minggu ditegakkan store secara atomik.
// Pre-check di service hanya memberi pesan error yang lebih ramah.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_leave_employee_week"`
	LeaveDate  time.Time `gorm:"type:date"`
	ISOWeek    string    `gorm:"column:iso_week;uniqueIndex:uq_leave_employee_week"`
	Reason     string
	Status     string     `gorm:"default:pending"`
	DecidedBy  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
