package repositories

import (
	"context"

	"github.com/google/uuid"
	"alvezinc.backend/internal/domain/entities"
)

// UserRepository defines identity data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUUID(ctx context.Context, userUUID uuid.UUID) (*entities.User, error)
	Activate(ctx context.Context, userUUID uuid.UUID) error
}

// UserActivationRepository defines one-time verification code operations
type UserActivationRepository interface {
	Create(ctx context.Context, userUUID uuid.UUID, code string) error
	// Consume marks the code as used and returns the UUID of the user
	// it belongs to. Unknown, expired and already-used codes fail.
	Consume(ctx context.Context, code string) (uuid.UUID, error)
}
