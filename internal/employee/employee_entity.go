package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID       uuid.UUID `gorm:"type:uuid;index"`
	TeamID         uuid.UUID `gorm:"type:uuid;index"`
	RoleID         uuid.UUID `gorm:"type:uuid"`
	EmployeeNumber string    `gorm:"uniqueIndex:uq_employee_number"`
	FullName       string
	Email          string `gorm:"uniqueIndex:uq_employee_email"`
	Phone          string
	EmploymentType string `gorm:"default:full_time"`
	Status         string `gorm:"default:active"`
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EmployeeJobTask memetakan tugas harian yang boleh dipegang karyawan frontline.
type EmployeeJobTask struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobTaskID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (EmployeeJobTask) TableName() string {
	return "employee_job_tasks"
}
