package shift

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind menandai posisi shift dalam satu hari kerja secara eksplisit.
// Deteksi lembur bergantung pada kind, bukan pada nama tampilan shift.
const (
	KindFirst  = "first"
	KindSecond = "second"
	KindOther  = "other"
)

type Shift struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null;uniqueIndex"`
	Kind      string    `gorm:"type:varchar(20);not null;default:'other';uniqueIndex:uq_shifts_kind,where:kind <> 'other'"`
	StartTime string    `gorm:"type:time;not null"`
	EndTime   string    `gorm:"type:time;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Shift) TableName() string {
	return "shifts"
}

// DeriveKind menebak kind dari nama tampilan ("Shift 1"/"Shift 2")
// untuk data lama yang belum menyimpan kind eksplisit.
func DeriveKind(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift 1":
		return KindFirst
	case "shift 2":
		return KindSecond
	default:
		return KindOther
	}
}
