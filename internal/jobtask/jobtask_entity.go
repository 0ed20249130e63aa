package jobtask

import (
	"time"

	"github.com/google/uuid"
)

// JobTask adalah job desk yang bisa dipegang karyawan frontline
// dalam satu shift, misalnya "Cashier" atau "Server".
type JobTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (JobTask) TableName() string {
	return "job_tasks"
}
