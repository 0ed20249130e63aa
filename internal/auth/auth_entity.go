package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	Email      string     `gorm:"uniqueIndex;not null"`
	Password   string     `gorm:"not null"`
	Name       string     `gorm:"not null"`
	Role       string     `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
