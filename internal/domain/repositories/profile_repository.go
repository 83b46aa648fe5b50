package repositories

import (
	"context"

	"github.com/google/uuid"
	"alvezinc.backend/internal/domain/entities"
)

// ProfileRepository defines profile document operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByUUID(ctx context.Context, userUUID uuid.UUID) (*entities.Profile, error)
	// Update applies a partial merge: only the fields set in input
	// change. Last writer wins.
	Update(ctx context.Context, userUUID uuid.UUID, input *entities.UpdateProfileInput) error
}

// ProductRepository defines catalog document operations
type ProductRepository interface {
	List(ctx context.Context) ([]*entities.Product, error)
	// Search returns products matching the free-text query, ordered by
	// descending store-assigned relevance score. An empty result is not
	// an error.
	Search(ctx context.Context, query string) ([]*entities.ProductSearchResult, error)
}
