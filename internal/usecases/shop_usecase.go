package usecases

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/domain/repositories"
	"alvezinc.backend/pkg/logger"
	"alvezinc.backend/pkg/redis"
)

const productCacheKey = "products"

// maxSearchQueryLength bounds free-text queries at the same limit the
// request validator enforces.
const maxSearchQueryLength = 128

// ShopUsecase handles catalog listing and ranked search
type ShopUsecase struct {
	productRepo repositories.ProductRepository
	cache       *redis.Cache
}

// NewShopUsecase creates a new shop usecase. cache may be nil, in
// which case every listing goes to the store.
func NewShopUsecase(productRepo repositories.ProductRepository, cache *redis.Cache) *ShopUsecase {
	return &ShopUsecase{
		productRepo: productRepo,
		cache:       cache,
	}
}

// ListProducts returns the catalog, read through the cache when one is
// configured. Cache failures fall back to the store and are only logged.
func (u *ShopUsecase) ListProducts(ctx context.Context) ([]*entities.Product, error) {
	if u.cache != nil {
		var cached []*entities.Product
		found, err := u.cache.GetJSON(ctx, productCacheKey, &cached)
		if err != nil {
			logger.Warn(ctx, "product cache read failed", zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, productCacheKey, products); err != nil {
			logger.Warn(ctx, "product cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

// SearchProducts runs a ranked free-text search over the catalog.
// Scoring and ordering come from the store's text index; an empty
// result set is a valid outcome.
func (u *ShopUsecase) SearchProducts(ctx context.Context, query string) ([]*entities.ProductSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" || len(query) > maxSearchQueryLength {
		return nil, domainerrors.ErrInvalidInput
	}
	return u.productRepo.Search(ctx, query)
}
