package models

import (
	"time"

	"github.com/google/uuid"
)

// UserActivation references users by UUID only. No foreign key on
// purpose: the credential and profile stores share nothing but the
// UUID, so integrity is enforced by the provisioning flow.
type UserActivation struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	UserUUID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	Code       string     `gorm:"type:varchar(64);index;not null"`
	ExpiresAt  time.Time  `gorm:"not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
}
