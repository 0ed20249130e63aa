package team

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind menandai perilaku penjadwalan sebuah tim secara eksplisit,
// terlepas dari nama tampilannya. Tim frontline wajib memilih job desk
// per shift, tim kitchen tidak.
const (
	KindFrontline = "frontline"
	KindKitchen   = "kitchen"
	KindOther     = "other"
)

type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;uniqueIndex"`
	Kind        string    `gorm:"type:varchar(20);not null;default:'other';index"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Team) TableName() string {
	return "teams"
}

// DeriveKind menebak kind dari nama tampilan untuk data lama
// yang belum menyimpan kind eksplisit.
func DeriveKind(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "frontline":
		return KindFrontline
	case "kitchen":
		return KindKitchen
	default:
		return KindOther
	}
}

func ValidKind(kind string) bool {
	switch kind {
	case KindFrontline, KindKitchen, KindOther:
		return true
	default:
		return false
	}
}
