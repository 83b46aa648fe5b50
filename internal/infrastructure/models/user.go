package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	UUID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	ActivatedAt  *time.Time `gorm:"type:timestamp"`
}
