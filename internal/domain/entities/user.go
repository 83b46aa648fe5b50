package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents the durable identity record. UUID is the only
// identifier other stores may reference; the numeric ID never leaves
// the relational store.
type User struct {
	ID           uint      `json:"-"`
	UUID         uuid.UUID `json:"uuid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	ActivatedAt  null.Time `json:"activatedAt,omitempty"`
}

// IsActivated reports whether the account has completed email verification.
func (u *User) IsActivated() bool {
	return u.ActivatedAt.Valid
}

// UserActivation represents a one-time verification credential. The
// user reference is soft: integrity across stores is guaranteed by the
// provisioning flow, not by a foreign key.
type UserActivation struct {
	ID         uint      `json:"-"`
	UserUUID   uuid.UUID `json:"userUuid"`
	Code       string    `json:"code"`
	ExpiresAt  time.Time `json:"expiresAt"`
	ConsumedAt null.Time `json:"consumedAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateAccountInput represents input for account provisioning
type CreateAccountInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,alphanum,min=3,max=30"`
	FullName string `json:"fullName" binding:"required"`
	Address  string `json:"address" binding:"required"`
	CP       int    `json:"cp" binding:"required,min=5"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,alphanum,min=3,max=30"`
}

// AuthResponse represents a successful login response
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
