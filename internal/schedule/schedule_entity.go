package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Satu baris = satu penugasan (karyawan, shift, tanggal, job task).
// Index unik membuat store sendiri yang menolak penugasan ganda,
// pre-check di service hanya petunjuk optimis untuk UX.
type Schedule struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BatchRef     string     `gorm:"index"`
	BranchID     uuid.UUID  `gorm:"type:uuid;index"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_schedule_assignment"`
	ShiftID      uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_schedule_assignment"`
	JobTaskID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_schedule_assignment"`
	ScheduleDate time.Time  `gorm:"type:date;uniqueIndex:uq_schedule_assignment;index"`
	IsOvertime   bool       `gorm:"default:false"`
	Status       string     `gorm:"default:scheduled"`
	Notes        string
	CreatedBy    uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
