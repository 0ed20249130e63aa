package branch

import (
	"time"

	"github.com/google/uuid"
)

type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null;uniqueIndex"`
	Address   *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Branch) TableName() string {
	return "branches"
}
